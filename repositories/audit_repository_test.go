package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/blogem/consulta-notas/config"
	"github.com/blogem/consulta-notas/database"
	"github.com/blogem/consulta-notas/models"
)

// AuditRepositoryTestSuite runs the shared AuditRepository contract against a backend
type AuditRepositoryTestSuite struct {
	suite.Suite
	newRepo func(t *testing.T) AuditRepository
	repo    AuditRepository
}

func (s *AuditRepositoryTestSuite) SetupTest() {
	s.repo = s.newRepo(s.T())
}

func (s *AuditRepositoryTestSuite) TestList_Empty() {
	entries, err := s.repo.List(context.Background())
	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *AuditRepositoryTestSuite) TestCreate_PreservesOrder() {
	ctx := context.Background()
	base := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		err := s.repo.Create(ctx, &models.AuditEntry{
			Timestamp:  base.Add(time.Duration(i) * time.Minute),
			Codigo:     fmt.Sprintf("%08d", i),
			Encontrado: i%2 == 0,
			IP:         "10.0.0.1",
			UserAgent:  "curl/8.0",
		})
		s.Require().NoError(err)
	}

	entries, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(entries, 5)
	for i, entry := range entries {
		s.Equal(fmt.Sprintf("%08d", i), entry.Codigo)
		s.Equal(i%2 == 0, entry.Encontrado)
		s.True(base.Add(time.Duration(i)*time.Minute).Equal(entry.Timestamp), "timestamp %d", i)
	}
}

func (s *AuditRepositoryTestSuite) TestCreate_RoundTripsFields() {
	ctx := context.Background()
	entry := &models.AuditEntry{
		Timestamp:  time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
		Codigo:     "12345678",
		Encontrado: true,
		Nombre:     "Pérez, Ana",
		IP:         "192.0.2.7",
		UserAgent:  `Mozilla/5.0 "quoted"`,
	}
	s.Require().NoError(s.repo.Create(ctx, entry))

	entries, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)

	got := entries[0]
	s.Equal(entry.Codigo, got.Codigo)
	s.True(got.Encontrado)
	s.Equal(entry.Nombre, got.Nombre)
	s.Equal(entry.IP, got.IP)
	s.Equal(entry.UserAgent, got.UserAgent)
	s.True(entry.Timestamp.Equal(got.Timestamp))
}

func (s *AuditRepositoryTestSuite) TestCreate_EmptyMetadata() {
	ctx := context.Background()
	s.Require().NoError(s.repo.Create(ctx, &models.AuditEntry{Codigo: "99999999"}))

	entries, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal("", entries[0].IP)
	s.Equal("", entries[0].UserAgent)
	s.False(entries[0].Encontrado)
	s.False(entries[0].Timestamp.IsZero(), "missing timestamp should default to now")
}

func (s *AuditRepositoryTestSuite) TestCreate_NilEntry() {
	s.ErrorIs(s.repo.Create(context.Background(), nil), ErrAuditEntryRequired)
}

func TestCSVAuditRepository(t *testing.T) {
	suite.Run(t, &AuditRepositoryTestSuite{
		newRepo: func(t *testing.T) AuditRepository {
			return NewCSVAuditRepository(filepath.Join(t.TempDir(), "consultas.csv"), ',', zap.NewNop())
		},
	})
}

func TestSQLiteAuditRepository(t *testing.T) {
	suite.Run(t, &AuditRepositoryTestSuite{
		newRepo: func(t *testing.T) AuditRepository {
			return NewSQLiteAuditRepository(setupTestDB(t))
		},
	})
}

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.InitializeDatabase(filepath.Join(t.TempDir(), "consultas.db"))
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func TestCSVAuditRepository_HeaderWrittenOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "consultas.csv")
	repo := NewCSVAuditRepository(path, ',', zap.NewNop())
	ctx := context.Background()

	ts := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &models.AuditEntry{Timestamp: ts, Codigo: "12345678", Encontrado: true, Nombre: "Ana Pérez", IP: "127.0.0.1", UserAgent: "curl/8.0"}))
	require.NoError(t, repo.Create(ctx, &models.AuditEntry{Timestamp: ts, Codigo: "99999999", IP: "127.0.0.1"}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	want := "timestamp,codigo,encontrado,nombre,ip,user_agent\n" +
		"2025-03-14T09:26:53Z,12345678,true,Ana Pérez,127.0.0.1,curl/8.0\n" +
		"2025-03-14T09:26:53Z,99999999,false,,127.0.0.1,\n"
	assert.Equal(t, want, string(content))
}

func TestCSVAuditRepository_HeaderWrittenForEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "consultas.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	repo := NewCSVAuditRepository(path, ',', zap.NewNop())
	require.NoError(t, repo.Create(context.Background(), &models.AuditEntry{Codigo: "12345678"}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "timestamp,codigo,encontrado,nombre,ip,user_agent\n"))
}

func TestCSVAuditRepository_ListLegacyColumns(t *testing.T) {
	path := writeFile(t, "consultas.csv",
		"timestamp,codigo,encontrado,ip,user_agent\n"+
			"2025-03-14T09:26:53,12345678,True,10.1.1.1,Firefox\n"+
			"2025-03-14T09:27:10,99999999,False,10.1.1.2,\n")

	repo := NewCSVAuditRepository(path, ',', zap.NewNop())
	entries, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "12345678", entries[0].Codigo)
	assert.True(t, entries[0].Encontrado)
	assert.Equal(t, "", entries[0].Nombre)
	assert.Equal(t, "10.1.1.1", entries[0].IP)
	assert.Equal(t, "Firefox", entries[0].UserAgent)
	assert.Equal(t, time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC), entries[0].Timestamp)

	assert.False(t, entries[1].Encontrado)
}

func TestCSVAuditRepository_ListHeaderOnly(t *testing.T) {
	path := writeFile(t, "consultas.csv", "timestamp,codigo,encontrado,nombre,ip,user_agent\n")

	entries, err := NewCSVAuditRepository(path, ',', zap.NewNop()).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCSVAuditRepository_ConcurrentAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "consultas.csv")
	repo := NewCSVAuditRepository(path, ',', zap.NewNop())
	ctx := context.Background()

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, repo.Create(ctx, &models.AuditEntry{
				Codigo:    fmt.Sprintf("%08d", i),
				UserAgent: strings.Repeat("x", 512),
			}))
		}(i)
	}
	wg.Wait()

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, writers)

	seen := make(map[string]bool)
	for _, entry := range entries {
		assert.Len(t, entry.UserAgent, 512)
		seen[entry.Codigo] = true
	}
	assert.Len(t, seen, writers)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(content), "timestamp,codigo"))
}

func TestNewRepositories_SelectsBackend(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)

	repos := NewRepositories(cfg, nil, zap.NewNop())
	assert.IsType(t, &csvAuditRepository{}, repos.Audit)
	assert.IsType(t, &csvGradeRepository{}, repos.Grades)

	cfg.AuditBackend = "sqlite"
	repos = NewRepositories(cfg, setupTestDB(t), zap.NewNop())
	assert.IsType(t, &sqliteAuditRepository{}, repos.Audit)
}

func testConfig(dir string) *config.Config {
	return &config.Config{
		TablePath:    filepath.Join(dir, "notas.csv"),
		LogPath:      filepath.Join(dir, "consultas.csv"),
		Delimiter:    ',',
		Port:         "8080",
		AuditBackend: config.AuditBackendCSV,
	}
}
