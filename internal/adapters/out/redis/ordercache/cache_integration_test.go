package ordercache_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fastfeet/internal/adapters/out/redis/ordercache"
	"fastfeet/internal/core/domain/model/kernel/kerneltest"
	"fastfeet/internal/core/domain/model/notification"
	"fastfeet/internal/core/domain/model/order"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type page struct {
	Page   int      `json:"page"`
	Orders []string `json:"orders"`
}

type OrderListCacheIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	client    *redis.Client
	cache     *ordercache.Cache
}

func (suite *OrderListCacheIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	endpoint, err := container.Endpoint(ctx, "")
	suite.Require().NoError(err)

	suite.client = redis.NewClient(&redis.Options{Addr: endpoint})
	suite.Require().NoError(suite.client.Ping(ctx).Err())
}

func (suite *OrderListCacheIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.client.FlushAll(context.Background()).Err())
	suite.cache = ordercache.NewCache(suite.client, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (suite *OrderListCacheIntegrationTestSuite) TearDownSuite() {
	if suite.client != nil {
		suite.Require().NoError(suite.client.Close())
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderListCacheIntegrationTestSuite) TestGet_Miss() {
	var dest page
	hit, err := suite.cache.Get(context.Background(), "page:1:option:0", &dest)

	suite.Require().NoError(err)
	suite.False(hit)
}

func (suite *OrderListCacheIntegrationTestSuite) TestSetThenGet_RoundTrip() {
	ctx := context.Background()
	stored := page{Page: 1, Orders: []string{"Box A", "Box B"}}

	suite.Require().NoError(suite.cache.Set(ctx, "page:1:option:0", stored))

	var loaded page
	hit, err := suite.cache.Get(ctx, "page:1:option:0", &loaded)
	suite.Require().NoError(err)
	suite.True(hit)
	suite.Equal(stored, loaded)

	ttl, err := suite.client.TTL(ctx, "fastfeet:orders:0:page:1:option:0").Result()
	suite.Require().NoError(err)
	suite.Positive(ttl)
	suite.LessOrEqual(ttl, time.Minute)
}

func (suite *OrderListCacheIntegrationTestSuite) TestInvalidate_DropsEveryPage() {
	ctx := context.Background()
	suite.Require().NoError(suite.cache.Set(ctx, "page:1:option:0", page{Page: 1}))
	suite.Require().NoError(suite.cache.Set(ctx, "page:2:option:3", page{Page: 2}))

	suite.Require().NoError(suite.cache.Invalidate(ctx))

	for _, key := range []string{"page:1:option:0", "page:2:option:3"} {
		var dest page
		hit, err := suite.cache.Get(ctx, key, &dest)
		suite.Require().NoError(err)
		suite.False(hit, key)
	}
}

func (suite *OrderListCacheIntegrationTestSuite) TestAggregatesCommitted() {
	ctx := context.Background()

	o, err := order.NewOrder("Box A", 1, kerneltest.ID(1), kerneltest.ID(2), time.Now())
	suite.Require().NoError(err)
	n, err := notification.NewNotification(kerneltest.ID(1), notification.Message{
		To: "ana@fastfeet.com", Subject: "s", Body: "b",
	}, time.Now())
	suite.Require().NoError(err)

	suite.Run("without orders keeps pages", func() {
		suite.Require().NoError(suite.cache.Set(ctx, "page:1:option:0", page{Page: 1}))

		suite.cache.AggregatesCommitted(ctx, []any{n})

		var dest page
		hit, err := suite.cache.Get(ctx, "page:1:option:0", &dest)
		suite.Require().NoError(err)
		suite.True(hit)
	})

	suite.Run("with an order drops pages", func() {
		suite.Require().NoError(suite.cache.Set(ctx, "page:1:option:0", page{Page: 1}))

		suite.cache.AggregatesCommitted(ctx, []any{n, o, o})

		var dest page
		hit, err := suite.cache.Get(ctx, "page:1:option:0", &dest)
		suite.Require().NoError(err)
		suite.False(hit)

		generation, err := suite.client.Get(ctx, "fastfeet:orders:generation").Int64()
		suite.Require().NoError(err)
		suite.Equal(int64(1), generation, "one invalidation per commit")
	})
}

func TestOrderListCacheIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderListCacheIntegrationTestSuite))
}
