//go:build e2e

package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"pet-order/cmd/bootstrap"
	"pet-order/cmd/bootstrap/components"
	"pet-order/internal/infra/db"
	"pet-order/internal/pkg/config"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

var (
	postgresContainerOnce sync.Once
	postgresTestContainer testcontainers.Container

	testUser     = "test"
	testPassword = "testpass"
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// ------------------------------------------------------------
// 偽ペットストア在庫サーバ
// ------------------------------------------------------------

// FakeStore is an in-process stand-in for one pet-store inventory service.
// It speaks the inventory HTTP API and keeps mutable stock that tests seed
// and the application consumes.
type FakeStore struct {
	mu     sync.Mutex
	types  []storeType
	server *httptest.Server
}

type storeType struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	pets map[string]bool
}

func NewFakeStore(t *testing.T) *FakeStore {
	t.Helper()

	fs := &FakeStore{}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /pet-types", fs.handleListTypes)
	mux.HandleFunc("GET /pet-types/{typeID}/pets", fs.handleListPets)
	mux.HandleFunc("GET /pet-types/{typeID}/pets/{name}", fs.handleGetPet)
	mux.HandleFunc("DELETE /pet-types/{typeID}/pets/{name}", fs.handleDeletePet)

	fs.server = httptest.NewServer(mux)
	t.Cleanup(fs.server.Close)

	return fs
}

func (f *FakeStore) URL() string {
	return f.server.URL
}

// Reset drops all stock between subtests.
func (f *FakeStore) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.types = nil
}

func (f *FakeStore) AddType(id, typeName string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.types = append(f.types, storeType{ID: id, Type: typeName, pets: map[string]bool{}})
}

func (f *FakeStore) AddPet(typeID, name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.types {
		if f.types[i].ID == typeID {
			f.types[i].pets[name] = true
			return
		}
	}
	panic(fmt.Sprintf("unknown pet type %q, call AddType first", typeID))
}

func (f *FakeStore) HasPet(typeID, name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.types {
		if f.types[i].ID == typeID {
			return f.types[i].pets[name]
		}
	}
	return false
}

func (f *FakeStore) findType(typeID string) (*storeType, bool) {
	for i := range f.types {
		if f.types[i].ID == typeID {
			return &f.types[i], true
		}
	}
	return nil, false
}

func (f *FakeStore) handleListTypes(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	listing := f.types
	if listing == nil {
		listing = []storeType{}
	}
	_ = json.NewEncoder(w).Encode(listing)
}

func (f *FakeStore) handleListPets(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	st, ok := f.findType(r.PathValue("typeID"))
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	listing := []map[string]string{}
	for name := range st.pets {
		listing = append(listing, map[string]string{"name": name})
	}
	_ = json.NewEncoder(w).Encode(listing)
}

func (f *FakeStore) handleGetPet(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	st, ok := f.findType(r.PathValue("typeID"))
	if !ok || !st.pets[r.PathValue("name")] {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"name": r.PathValue("name")})
}

func (f *FakeStore) handleDeletePet(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	st, ok := f.findType(r.PathValue("typeID"))
	if !ok || !st.pets[r.PathValue("name")] {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	delete(st.pets, r.PathValue("name"))
	w.WriteHeader(http.StatusNoContent)
}

// ------------------------------------------------------------
// 各テストプロセス用にセットアップ
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*pgxpool.Pool, *gin.Engine, [2]*FakeStore, config.Config) {
	postgresInfo := startContainers(t)

	pool, dbConfig := prepareDatabase(t, postgresInfo)

	stores := [2]*FakeStore{NewFakeStore(t), NewFakeStore(t)}

	router, cfg, app := buildE2EApp(dbConfig, stores)
	require.NotNil(t, router, "Routerのセットアップに失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})

	slog.Info("E2E環境の準備が完了しました",
		"postgres_host", postgresInfo.Host,
		"postgres_port", postgresInfo.Port.Port())

	return pool, router, stores, cfg
}

// ------------------------------------------------------------
// コンテナ起動関数
// ------------------------------------------------------------
func startContainers(t *testing.T) ContainerInfo {
	gin.SetMode(gin.TestMode)
	startPostgreSQLContainerOnce(t)

	postgresInfo, err := getContainerHostPort(postgresTestContainer, "5432/tcp")
	require.NoError(t, err, "PostgreSQLコンテナ情報の取得に失敗")

	return postgresInfo
}

// ------------------------------------------------------------
// データベース準備関数
// ------------------------------------------------------------
func prepareDatabase(t *testing.T, postgresInfo ContainerInfo) (*pgxpool.Pool, config.DBConfig) {
	// プロセス毎に違うデータベース名を生成
	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")

	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, postgresInfo.Host, postgresInfo.Port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "管理者接続に失敗")
	defer adminPool.Close()

	var createErr error
	for attempts := range 5 {
		if attempts > 0 {
			time.Sleep(time.Duration(500+attempts*500) * time.Millisecond)
			slog.Warn("データベース作成を再試行中", "attempt", attempts+1, "error", createErr.Error())
		}
		_, createErr = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
		if createErr == nil {
			break
		}
	}
	require.NoError(t, createErr, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()

		cleanupPool, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			slog.Warn("クリーンアップ用のデータベース接続に失敗しました", "database", dbName, "error", err.Error())
			return
		}
		defer cleanupPool.Close()

		if _, err := cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", dbName, "error", err.Error())
		}
	})

	dbConfig := config.DBConfig{
		Host:     postgresInfo.Host,
		Port:     postgresInfo.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
	}

	pool, _, err := db.Connect(dbConfig)
	require.NoError(t, err, "データベース接続に失敗")
	require.NotNil(t, pool, "データベース接続が nil です")

	t.Cleanup(pool.Close)

	return pool, dbConfig
}

// ------------------------------------------------------------
// E2Eテスト用アプリケーション構築関数
// ------------------------------------------------------------
func buildE2EApp(dbConfig config.DBConfig, stores [2]*FakeStore) (*gin.Engine, config.Config, *fx.App) {
	var router *gin.Engine
	var cfg config.Config

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config {
			return createTestConfig(dbConfig, stores)
		}),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.PetStoreModule,
		bootstrap.LedgerModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &cfg),

		// ログを無効にして起動
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	if router == nil {
		panic("fxアプリケーションの起動に失敗しました")
	}

	return router, cfg, app
}

func createTestConfig(dbConfig config.DBConfig, stores [2]*FakeStore) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.DB = dbConfig
	testConfig.Ledger.Driver = "postgres"
	testConfig.PetStores.Store1URL = stores[0].URL()
	testConfig.PetStores.Store2URL = stores[1].URL()
	return testConfig
}

// ------------------------------------------------------------
// コンテナ起動の共通関数
// ------------------------------------------------------------
func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

// ------------------------------------------------------------
// PostgreSQLコンテナを一度だけ起動／再利用
// ------------------------------------------------------------
func startPostgreSQLContainerOnce(t *testing.T) {
	postgresContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=512m", // データをRAMに載せてI/O削減
			},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off", // 耐久性よりパフォーマンスを優先
				"-c", "synchronous_commit=off",
				"-c", "full_page_writes=off",
				"-c", "max_connections=200",
				"-c", "log_statement=none",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
					testUser, testPassword, host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
			Name:   "postgres-e2e",
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		postgresTestContainer, err = startGenericContainer(req, 180)
		require.NoError(t, err, "PostgreSQLコンテナの起動に失敗")

		t.Cleanup(func() {
			if postgresTestContainer != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := postgresTestContainer.Terminate(ctx); err != nil {
					slog.Warn("PostgreSQLコンテナの終了に失敗しました", "error", err.Error())
				}
			}
		})
	})
}

// ------------------------------------------------------------
// コンテナ関連の共通ユーティリティ関数
// ------------------------------------------------------------
func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// E2Eテストスイートで共通のセットアップ
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Stores [2]*FakeStore
	Config config.Config
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	db, router, stores, cfg := setupE2EEnvironment(t)
	s.DB = db
	s.Router = router
	s.Stores = stores
	s.Config = cfg
	require.NotNil(t, db, "DBのセットアップに失敗")
	require.NotNil(t, s.Router, "Routerのセットアップに失敗")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

// SetupSubTest empties the ledger and both inventories so subtests stay
// independent.
func (s *SharedSuite) SetupSubTest() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.DB.Exec(ctx, `TRUNCATE transactions`)
	require.NoError(s.T(), err, "Failed to reset database state")

	for _, store := range s.Stores {
		store.Reset()
	}
}

// Store1 and Store2 mirror the fixed store numbering used across the service.
func (s *SharedSuite) Store1() *FakeStore { return s.Stores[0] }

func (s *SharedSuite) Store2() *FakeStore { return s.Stores[1] }
