package locks_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"dentallab/internal/adapters/out/locks"
	"dentallab/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

type RedisLockerIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	client    *redis.Client
	locker    *locks.RedisLocker
}

func (suite *RedisLockerIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	endpoint, err := container.Endpoint(ctx, "")
	suite.Require().NoError(err)

	suite.client = redis.NewClient(&redis.Options{Addr: endpoint})
	suite.locker = locks.NewRedisLocker(suite.client, locks.RedisLockerConfig{
		Wait:  100 * time.Millisecond,
		TTL:   5 * time.Second,
		Retry: 10 * time.Millisecond,
	}, zap.NewNop())
}

func (suite *RedisLockerIntegrationTestSuite) TearDownSuite() {
	if suite.client != nil {
		suite.Require().NoError(suite.client.Close())
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RedisLockerIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.client.FlushAll(context.Background()).Err())
}

func (suite *RedisLockerIntegrationTestSuite) TestLock_HeldKeyReportsContention() {
	ctx := context.Background()

	unlock, err := suite.locker.Lock(ctx, "order:1")
	suite.Require().NoError(err)

	_, err = suite.locker.Lock(ctx, "order:1")
	suite.Require().ErrorIs(err, errs.ErrContention)

	unlock()
	unlock, err = suite.locker.Lock(ctx, "order:1")
	suite.Require().NoError(err)
	unlock()
}

func (suite *RedisLockerIntegrationTestSuite) TestUnlock_DoesNotReleaseForeignToken() {
	ctx := context.Background()

	unlock, err := suite.locker.Lock(ctx, "order:2")
	suite.Require().NoError(err)

	// Simulate expiry followed by another owner taking the key.
	suite.Require().NoError(suite.client.Set(ctx, "dentallab:lock:order:2", "someone-else", time.Minute).Err())
	unlock()

	owner, err := suite.client.Get(ctx, "dentallab:lock:order:2").Result()
	suite.Require().NoError(err)
	suite.Equal("someone-else", owner)
}

func (suite *RedisLockerIntegrationTestSuite) TestLock_WaitsForRelease() {
	ctx := context.Background()

	unlock, err := suite.locker.Lock(ctx, "outsourcing:3")
	suite.Require().NoError(err)

	go func() {
		time.Sleep(30 * time.Millisecond)
		unlock()
	}()

	second, err := suite.locker.Lock(ctx, "outsourcing:3")
	suite.Require().NoError(err)
	second()
}

func (suite *RedisLockerIntegrationTestSuite) TestUnlock_ConcurrentCallsReleaseOnce() {
	ctx := context.Background()

	unlock, err := suite.locker.Lock(ctx, "order:4")
	suite.Require().NoError(err)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock()
		}()
	}
	wg.Wait()

	exists, err := suite.client.Exists(ctx, "dentallab:lock:order:4").Result()
	suite.Require().NoError(err)
	suite.Zero(exists)

	next, err := suite.locker.Lock(ctx, "order:4")
	suite.Require().NoError(err)
	unlock()
	exists, err = suite.client.Exists(ctx, "dentallab:lock:order:4").Result()
	suite.Require().NoError(err)
	suite.Equal(int64(1), exists, "a spent unlock must not touch the next holder's lock")
	next()
}

func TestRedisLockerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RedisLockerIntegrationTestSuite))
}
