package blob

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type stubS3 struct {
	objects map[string][]byte
	putErr  error
}

func (s *stubS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if s.putErr != nil {
		return nil, s.putErr
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	if s.objects == nil {
		s.objects = map[string][]byte{}
	}
	s.objects[*in.Key] = data
	return &s3.PutObjectOutput{}, nil
}

func (s *stubS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(s.objects, *in.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Store_PutAndRemove(t *testing.T) {
	stub := &stubS3{}
	s := &S3Store{client: stub, bucket: "reports"}

	uri, err := s.Put(context.Background(), "scan.pdf", strings.NewReader("pdf bytes"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if !strings.HasPrefix(uri, "s3://reports/evidence/") || !strings.HasSuffix(uri, "_scan.pdf") {
		t.Fatalf("unexpected URI: %q", uri)
	}
	if len(stub.objects) != 1 {
		t.Fatalf("expected 1 stored object, got %d", len(stub.objects))
	}
	for _, data := range stub.objects {
		if string(data) != "pdf bytes" {
			t.Fatalf("stored content mismatch: %q", data)
		}
	}

	if err := s.Remove(context.Background(), uri); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if len(stub.objects) != 0 {
		t.Fatalf("object not deleted")
	}
}

func TestS3Store_PutError(t *testing.T) {
	s := &S3Store{client: &stubS3{putErr: errors.New("denied")}, bucket: "reports"}
	if _, err := s.Put(context.Background(), "x", strings.NewReader("y")); err == nil {
		t.Fatalf("expected error")
	}
}

func TestS3Store_RemoveRejectsForeignURIs(t *testing.T) {
	s := &S3Store{client: &stubS3{}, bucket: "reports"}
	for _, uri := range []string{"file:///tmp/x", "s3://other-bucket/evidence/x", "s3://reports"} {
		if err := s.Remove(context.Background(), uri); err == nil {
			t.Errorf("expected error for %q", uri)
		}
	}
}
