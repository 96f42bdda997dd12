package dataset

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchmaker/internal/config"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		data string
		want []string
	}{
		{"empty content", "", []string{""}},
		{"single line", "alice@example.com,HouseA", []string{"alice@example.com,HouseA"}},
		{"trailing newline", "a\nb\n", []string{"a", "b", ""}},
		{"crlf kept", "a\r\nb", []string{"a\r", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines([]byte(tt.data)))
		})
	}
}

func TestFileSource_Lines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("alice@example.com,HouseA\nbob@example.com,HouseB"), 0o600))

	src := NewFileSource(path)
	lines, err := src.Lines(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"alice@example.com,HouseA", "bob@example.com,HouseB"}, lines)
	assert.Equal(t, "file", src.Name())
}

func TestFileSource_RereadsEveryCall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("first"), 0o600))

	src := NewFileSource(path)
	lines, err := src.Lines(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"first"}, lines)

	require.NoError(t, os.WriteFile(path, []byte("second"), 0o600))
	lines, err = src.Lines(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"second"}, lines)
}

func TestFileSource_Missing(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "missing.csv"))

	_, err := src.Lines(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestFileSource_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileSource("data.csv").Lines(ctx)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStaticSource_ReturnsCopy(t *testing.T) {
	src := NewStaticSource("a", "b")

	lines, err := src.Lines(context.Background())
	require.NoError(t, err)
	lines[0] = "mutated"

	again, err := src.Lines(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, again)
}

type fakeS3 struct {
	body  string
	err   error
	input *s3.GetObjectInput
}

func (f *fakeS3) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(f.body))}, nil
}

func TestS3Source_Lines(t *testing.T) {
	client := &fakeS3{body: "alice@example.com,HouseA\n"}
	src := NewS3SourceWithClient(client, "attendees", "data.csv")

	lines, err := src.Lines(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"alice@example.com,HouseA", ""}, lines)
	assert.Equal(t, "attendees", aws.ToString(client.input.Bucket))
	assert.Equal(t, "data.csv", aws.ToString(client.input.Key))
}

func TestS3Source_MissingObject(t *testing.T) {
	client := &fakeS3{err: &types.NoSuchKey{}}
	src := NewS3SourceWithClient(client, "attendees", "data.csv")

	_, err := src.Lines(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)

	var nsk *types.NoSuchKey
	assert.True(t, errors.As(err, &nsk))
}

func TestNewS3Source_RequiresBucket(t *testing.T) {
	_, err := NewS3Source(context.Background(), S3Options{Key: "data.csv", Region: "us-east-1"})
	assert.Error(t, err)
}

func TestRedisSource_Lines(t *testing.T) {
	mr := miniredis.RunT(t)
	require.NoError(t, mr.Set("matchmaker:dataset", "alice@example.com,HouseA\nbob@example.com,HouseB"))

	src, err := NewRedisSource("redis://"+mr.Addr()+"/0", "matchmaker:dataset")
	require.NoError(t, err)
	defer src.Close()

	lines, err := src.Lines(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"alice@example.com,HouseA", "bob@example.com,HouseB"}, lines)
	assert.Equal(t, "redis", src.Name())
}

func TestRedisSource_MissingKey(t *testing.T) {
	mr := miniredis.RunT(t)

	src, err := NewRedisSource("redis://"+mr.Addr()+"/0", "matchmaker:dataset")
	require.NoError(t, err)
	defer src.Close()

	_, err = src.Lines(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, errKeyMissing)
}

func TestRedisSource_ServerGone(t *testing.T) {
	mr := miniredis.RunT(t)
	require.NoError(t, mr.Set("matchmaker:dataset", "a"))

	src, err := NewRedisSource("redis://"+mr.Addr()+"/0", "matchmaker:dataset")
	require.NoError(t, err)
	defer src.Close()

	mr.Close()

	_, err = src.Lines(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestOpen(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		src, err := Open(context.Background(), &config.Config{DatasetSource: config.SourceFile, DatasetPath: "data.csv"})
		require.NoError(t, err)
		fileSrc, ok := src.(*FileSource)
		require.True(t, ok)
		assert.Equal(t, "data.csv", fileSrc.Path)
	})

	t.Run("redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		src, err := Open(context.Background(), &config.Config{
			DatasetSource: config.SourceRedis,
			RedisURL:      "redis://" + mr.Addr() + "/0",
			RedisKey:      "k",
		})
		require.NoError(t, err)
		defer Close(src)
		assert.Equal(t, "redis", src.Name())
	})

	t.Run("unknown", func(t *testing.T) {
		src, err := Open(context.Background(), &config.Config{DatasetSource: "ftp"})
		assert.Nil(t, src)
		assert.ErrorIs(t, err, ErrUnknownSource)
	})
}

func TestClose_NoCloser(t *testing.T) {
	assert.NoError(t, Close(NewStaticSource()))
}
