package s3_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/media-service/internal/file/app/storage"
	files3 "github.com/klwxsrx/media-service/internal/file/infra/s3"
)

type fakeClient struct {
	input  *s3.PutObjectInput
	delete *s3.DeleteObjectInput
	body   string
	err    error
}

func (c *fakeClient) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	c.input = in
	if in.Body != nil {
		data, _ := io.ReadAll(in.Body)
		c.body = string(data)
	}
	return &s3.PutObjectOutput{}, c.err
}

func (c *fakeClient) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	c.delete = in
	return &s3.DeleteObjectOutput{}, c.err
}

func TestObjectStorage_Put(t *testing.T) {
	client := &fakeClient{}
	objectStorage, err := files3.NewObjectStorageWithClient(client, files3.Config{
		Bucket:    "media",
		PublicURL: "https://cdn.example.com/",
	})
	require.NoError(t, err)

	url, err := objectStorage.Put(context.Background(), storage.Object{
		Key:         "owner/my file.png",
		ContentType: "image/png",
		Size:        5,
		Body:        strings.NewReader("hello"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/owner/my%20file.png", url)

	assert.Equal(t, "media", aws.ToString(client.input.Bucket))
	assert.Equal(t, "owner/my file.png", aws.ToString(client.input.Key))
	assert.Equal(t, "image/png", aws.ToString(client.input.ContentType))
	assert.Equal(t, int64(5), aws.ToInt64(client.input.ContentLength))
	assert.Equal(t, "hello", client.body)
}

func TestObjectStorage_DefaultPublicURL(t *testing.T) {
	objectStorage, err := files3.NewObjectStorageWithClient(&fakeClient{}, files3.Config{
		Endpoint: "http://localhost:9000/",
		Bucket:   "media",
	})
	require.NoError(t, err)

	url, err := objectStorage.Put(context.Background(), storage.Object{Key: "a.png", ContentType: "image/png"})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/media/a.png", url)
}

func TestObjectStorage_Errors(t *testing.T) {
	_, err := files3.NewObjectStorageWithClient(&fakeClient{}, files3.Config{Bucket: "media"})
	assert.Error(t, err)

	objectStorage, err := files3.NewObjectStorageWithClient(&fakeClient{err: errors.New("unexpected")}, files3.Config{
		Bucket:    "media",
		PublicURL: "https://cdn.example.com",
	})
	require.NoError(t, err)

	_, err = objectStorage.Put(context.Background(), storage.Object{Key: "a.png"})
	assert.Error(t, err)
}

func TestObjectStorage_Delete(t *testing.T) {
	client := &fakeClient{}
	objectStorage, err := files3.NewObjectStorageWithClient(client, files3.Config{
		Bucket:    "media",
		PublicURL: "https://cdn.example.com",
	})
	require.NoError(t, err)

	require.NoError(t, objectStorage.Delete(context.Background(), "owner/a.png"))
	assert.Equal(t, "media", aws.ToString(client.delete.Bucket))
	assert.Equal(t, "owner/a.png", aws.ToString(client.delete.Key))

	client.err = errors.New("unexpected")
	err = objectStorage.Delete(context.Background(), "owner/a.png")
	assert.ErrorContains(t, err, "delete object owner/a.png")
}
