package resume

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRepo struct {
	mu      sync.Mutex
	batches []Batch
	err     error
}

func (r *recordingRepo) Save(_ context.Context, b Batch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, b)
	return r.err
}

func (r *recordingRepo) Get(context.Context, uuid.UUID) (Batch, error) {
	return Batch{}, ErrNotFound
}

func (r *recordingRepo) List(context.Context, int, int) ([]Batch, error) {
	return nil, nil
}

func newTestService(opts Options) *Service {
	return NewService(NewExtractor(&capitalizedPairs{}, nil), nil, opts)
}

func TestService_ParseDocument(t *testing.T) {
	svc := newTestService(Options{})
	ctx := context.Background()

	ok := svc.ParseDocument(ctx, Document{Filename: "jane.docx", Data: buildDocx(t, "Jane Doe", "jane@doe.dev", "Python and SQL")})
	assert.Equal(t, RecordStatusOK, ok.Status)
	assert.Equal(t, "Jane Doe", ok.Name)
	assert.Equal(t, "jane@doe.dev", ok.Email)
	assert.Equal(t, []string{"Python", "SQL"}, ok.Skills)
	assert.Equal(t, "jane.docx", ok.File)

	bad := svc.ParseDocument(ctx, Document{Filename: "broken.pdf", Data: []byte("nope")})
	assert.Equal(t, RecordStatusFailed, bad.Status)
	assert.Equal(t, "broken.pdf", bad.File)
	assert.Contains(t, bad.Error, "extract broken.pdf")
	assert.Empty(t, bad.Skills)

	// unsupported formats are not read at all and produce an empty record
	other := svc.ParseDocument(ctx, Document{Filename: "notes.txt", Path: "/does/not/exist.txt"})
	assert.Equal(t, RecordStatusOK, other.Status)
	assert.Empty(t, other.Email)
	assert.Empty(t, other.Skills)
}

func TestService_ParseFolder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.docx"), buildDocx(t, "Ann Lee", "ann@lee.io", "Python"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.pdf"), []byte("corrupt"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.txt"), []byte("Python SQL"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "d.pdf"), 0o755))

	repo := &recordingRepo{}
	svc := newTestService(Options{Repo: repo})

	b, err := svc.ParseFolder(context.Background(), dir)
	require.NoError(t, err)

	require.Len(t, b.Records, 4)
	assert.Equal(t, SourceFolder, b.Source)
	assert.Equal(t, 4, b.Total)
	assert.Equal(t, 2, b.Failed)

	files := make([]string, len(b.Records))
	for i, r := range b.Records {
		files[i] = r.File
	}
	assert.Equal(t, []string{"a.docx", "b.pdf", "c.txt", "d.pdf"}, files)

	assert.Equal(t, "ann@lee.io", b.Records[0].Email)
	assert.True(t, b.Records[1].Failed())
	assert.False(t, b.Records[2].Failed())
	assert.True(t, b.Records[3].Failed())

	failures := b.Failures()
	require.Len(t, failures, 2)
	assert.Equal(t, "b.pdf", failures[0].File)
	assert.Equal(t, "d.pdf", failures[1].File)

	require.Len(t, repo.batches, 1)
	assert.Equal(t, b.ID, repo.batches[0].ID)
}

func TestService_ParseFolderMissing(t *testing.T) {
	_, err := newTestService(Options{}).ParseFolder(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.ErrorContains(t, err, "read folder")
}

func TestService_ParseDocumentsKeepsOrderWithWorkers(t *testing.T) {
	svc := newTestService(Options{Workers: 4})
	docs := make([]Document, 20)
	for i := range docs {
		docs[i] = Document{
			Filename: fmt.Sprintf("cv-%02d.docx", i),
			Data:     buildDocx(t, fmt.Sprintf("user%d@mail.com", i)),
		}
	}

	b, err := svc.ParseDocuments(context.Background(), docs, SourceUpload)
	require.NoError(t, err)

	require.Len(t, b.Records, len(docs))
	for i, r := range b.Records {
		assert.Equal(t, docs[i].Filename, r.File)
		assert.Equal(t, fmt.Sprintf("user%d@mail.com", i), r.Email)
	}
	assert.Equal(t, SourceUpload, b.Source)
	assert.Zero(t, b.Failed)
}

func TestService_ParseDocumentsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestService(Options{}).ParseDocuments(ctx, []Document{{Filename: "a.txt"}}, SourceUpload)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestService_SaveFailure(t *testing.T) {
	repo := &recordingRepo{err: errors.New("db down")}
	svc := newTestService(Options{Repo: repo})

	b, err := svc.ParseDocuments(context.Background(), []Document{{Filename: "a.txt"}}, SourceUpload)

	assert.ErrorContains(t, err, "db down")
	assert.Len(t, b.Records, 1)
}
