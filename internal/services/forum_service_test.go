package services

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestForumService_CreateAndGet(t *testing.T) {
	s := NewForumService(newServiceDB(t))

	post, err := s.CreatePost(context.Background(), "  How to   deal with   exam stress ", "Looking for advice.")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if post.Title != "How to deal with exam stress" {
		t.Fatalf("title not normalized: %q", post.Title)
	}

	got, replies, err := s.GetPost(context.Background(), post.ID)
	if err != nil {
		t.Fatalf("GetPost: %v", err)
	}
	if got.ID != post.ID || len(replies) != 0 {
		t.Fatalf("unexpected post %d / %d replies", got.ID, len(replies))
	}
}

func TestForumService_CreatePost_Validation(t *testing.T) {
	s := NewForumService(newServiceDB(t))

	if _, err := s.CreatePost(context.Background(), "  ", "body"); !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("blank title: got %v", err)
	}
	if _, err := s.CreatePost(context.Background(), "title", " \n "); !errors.Is(err, ErrEmptyBody) {
		t.Fatalf("blank body: got %v", err)
	}

	s.TitleMaxLen = 5
	post, err := s.CreatePost(context.Background(), "a very long title", "body")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if post.Title != "a ver" {
		t.Fatalf("title not clipped: %q", post.Title)
	}
}

func TestForumService_RepliesAndCounts(t *testing.T) {
	s := NewForumService(newServiceDB(t))

	first, err := s.CreatePost(context.Background(), "first", "body one")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	second, err := s.CreatePost(context.Background(), "second", "body two")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	for _, body := range []string{"reply a", "reply b"} {
		if _, err := s.Reply(context.Background(), first.ID, body); err != nil {
			t.Fatalf("Reply: %v", err)
		}
	}

	posts, err := s.ListPosts(context.Background())
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("len = %d, want 2", len(posts))
	}
	counts := map[uint]int64{}
	for _, p := range posts {
		counts[p.ID] = p.ReplyCount
	}
	if counts[first.ID] != 2 || counts[second.ID] != 0 {
		t.Fatalf("reply counts: %v", counts)
	}

	_, replies, err := s.GetPost(context.Background(), first.ID)
	if err != nil {
		t.Fatalf("GetPost: %v", err)
	}
	if len(replies) != 2 || replies[0].Body != "reply a" || replies[1].Body != "reply b" {
		t.Fatalf("replies out of order: %+v", replies)
	}
}

func TestForumService_Reply_Validation(t *testing.T) {
	s := NewForumService(newServiceDB(t))

	post, err := s.CreatePost(context.Background(), "title", "body")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	if _, err := s.Reply(context.Background(), post.ID, "  "); !errors.Is(err, ErrEmptyBody) {
		t.Fatalf("blank reply: got %v", err)
	}
	if _, err := s.Reply(context.Background(), 9999, "hello"); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("missing post: got %v", err)
	}

	reply, err := s.Reply(context.Background(), post.ID, "  trimmed  ")
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}
	if reply.Body != "trimmed" {
		t.Fatalf("reply body = %q", reply.Body)
	}
	if strings.TrimSpace(reply.Body) == "" {
		t.Fatalf("empty reply stored")
	}
}

func TestForumService_GetPost_NotFound(t *testing.T) {
	s := NewForumService(newServiceDB(t))
	if _, _, err := s.GetPost(context.Background(), 42); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("got %v", err)
	}
}
