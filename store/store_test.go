// SPDX-License-Identifier: MIT

package store_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chaztikov/gROM/store"
)

func TestFS_PutIsAtomic(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	fs, err := store.NewFS(dir)
	require.NoError(t, err)

	require.NoError(t, fs.Put(context.Background(), "a.0.grph", []byte("payload")))
	got, err := os.ReadFile(filepath.Join(dir, "a.0.grph"))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not survive")
	assert.Equal(t, filepath.Join(dir, "a.0.grph"), fs.Location("a.0.grph"))
}

func TestFS_CanceledContext(t *testing.T) {
	fs, err := store.NewFS(t.TempDir())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, fs.Put(ctx, "x.grph", nil), context.Canceled)
}

func TestParseS3(t *testing.T) {
	b, p, ok, err := store.ParseS3("s3://graphs/runs/2024/")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "graphs", b)
	assert.Equal(t, "runs/2024", p)

	_, _, ok, err = store.ParseS3("/tmp/graphs")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, _, err = store.ParseS3("s3:///prefix")
	assert.ErrorIs(t, err, store.ErrBadLocation)
}

type fakeS3 struct {
	inputs []*s3.PutObjectInput
	bodies [][]byte
	err    error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.inputs = append(f.inputs, in)
	f.bodies = append(f.bodies, body)
	return &s3.PutObjectOutput{}, nil
}

func TestS3_Put(t *testing.T) {
	fake := &fakeS3{}
	st := &store.S3{Client: fake, Bucket: "graphs", Prefix: "run1"}

	require.NoError(t, st.Put(context.Background(), "y.0.grph", []byte{1, 2, 3}))
	require.Len(t, fake.inputs, 1)
	assert.Equal(t, "graphs", aws.ToString(fake.inputs[0].Bucket))
	assert.Equal(t, "run1/y.0.grph", aws.ToString(fake.inputs[0].Key))
	assert.Equal(t, int64(3), aws.ToInt64(fake.inputs[0].ContentLength))
	assert.Equal(t, []byte{1, 2, 3}, fake.bodies[0])
	assert.Equal(t, "s3://graphs/run1/y.0.grph", st.Location("y.0.grph"))
}

func TestS3_PutError(t *testing.T) {
	boom := errors.New("boom")
	st := &store.S3{Client: &fakeS3{err: boom}, Bucket: "b"}
	assert.ErrorIs(t, st.Put(context.Background(), "x.grph", nil), boom)
	assert.Equal(t, "s3://b/x.grph", st.Location("x.grph"))
}

func TestOpen_Filesystem(t *testing.T) {
	dir := t.TempDir()
	st, err := store.Open(context.Background(), dir, store.S3Config{})
	require.NoError(t, err)
	_, ok := st.(*store.FS)
	assert.True(t, ok)
}
