package s3store_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"travel/pkg/objectstore"
	"travel/pkg/objectstore/s3store"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	puts    []*s3.PutObjectInput
	bodies  []string
	deletes []string
	err     error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, _ := io.ReadAll(in.Body)
	f.puts = append(f.puts, in)
	f.bodies = append(f.bodies, string(body))

	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context,
	in *s3.DeleteObjectInput,
	_ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.deletes = append(f.deletes, aws.ToString(in.Key))

	return &s3.DeleteObjectOutput{}, nil
}

func TestUpload(t *testing.T) {
	api := &fakeS3{}
	store := s3store.NewWithAPI(api, s3store.Options{Bucket: "media", CDNBaseURL: "https://cdn.example.com"})

	obj, err := store.Upload(context.Background(), "posts", "cover.png", "image/png", strings.NewReader("png"), 3)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(obj.Key, "posts/"))
	require.Equal(t, "https://cdn.example.com/"+obj.Key, obj.URL)

	require.Len(t, api.puts, 1)
	require.Equal(t, "media", aws.ToString(api.puts[0].Bucket))
	require.Equal(t, obj.Key, aws.ToString(api.puts[0].Key))
	require.Equal(t, "image/png", aws.ToString(api.puts[0].ContentType))
	require.Equal(t, "png", api.bodies[0])
	require.Equal(t, map[string]string{"original-name": "cover.png"}, api.puts[0].Metadata)

	require.NoError(t, store.Delete(context.Background(), obj.Key))
	require.Equal(t, []string{obj.Key}, api.deletes)
}

func TestUpload_KeyIgnoresFileName(t *testing.T) {
	api := &fakeS3{}
	store := s3store.NewWithAPI(api, s3store.Options{Bucket: "media", CDNBaseURL: "https://cdn.example.com"})

	obj, err := store.Upload(context.Background(), "posts", "x.html", "image/png", strings.NewReader("png"), 3)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(obj.Key, ".png"), obj.Key)
	require.Equal(t, map[string]string{"original-name": "x.html"}, api.puts[0].Metadata)
}

func TestUpload_Failure(t *testing.T) {
	api := &fakeS3{err: errors.New("access denied")}
	store := s3store.NewWithAPI(api, s3store.Options{Bucket: "media", CDNBaseURL: "https://cdn.example.com"})

	_, err := store.Upload(context.Background(), "posts", "cover.png", "image/png", strings.NewReader("png"), 3)
	require.ErrorContains(t, err, "access denied")
}

func TestNotConfigured(t *testing.T) {
	store, err := s3store.New(context.Background(), s3store.Options{Bucket: "media"})
	require.NoError(t, err)

	_, err = store.Upload(context.Background(), "posts", "a.png", "image/png", strings.NewReader(""), 0)
	require.ErrorIs(t, err, objectstore.ErrNotConfigured)
	require.ErrorIs(t, store.Delete(context.Background(), "posts/a.png"), objectstore.ErrNotConfigured)
}
