package infra

import (
	"database/sql"
	"io"
	"strings"

	"paynotify/infra/database"
	"paynotify/infra/database/db_postgresql"
	"paynotify/infra/token"
	"paynotify/internal/audit"
	"paynotify/internal/events"
	eventskafka "paynotify/internal/events/kafka"
	"paynotify/internal/notification"
	"paynotify/internal/order"
	"paynotify/pkg"
	bucket "paynotify/pkg/s3"

	"go.uber.org/zap"
)

type ContainerDI struct {
	Config              Config
	ConnDB              *sql.DB
	Logger              *zap.Logger
	AuditLogger         *audit.Logger
	Cache               *pkg.Cache
	Archiver            *bucket.Archiver
	Dispatcher          events.Dispatcher
	PasetoMaker         token.Maker
	RepositoryOrder     *order.Repository
	ServiceOrder        *order.Service
	HandlerOrder        *order.Handler
	ServiceNotification *notification.Service
	HandlerNotification *notification.Handler
}

func NewContainerDI(config Config) *ContainerDI {
	container := &ContainerDI{Config: config}
	container.db()
	container.buildPkg()
	container.buildRepository()
	container.buildService()
	container.buildHandler()
	return container
}

func (c *ContainerDI) db() {
	dbConfig := database.Config{
		Host:        c.Config.DBHost,
		Port:        c.Config.DBPort,
		User:        c.Config.DBUser,
		Password:    c.Config.DBPassword,
		Database:    c.Config.DBDatabase,
		SSLMode:     c.Config.DBSSLMode,
		Driver:      c.Config.DBDriver,
		Environment: c.Config.Environment,
	}
	c.ConnDB = db_postgresql.NewConnection(&dbConfig)
}

func (c *ContainerDI) buildPkg() {
	var err error
	if c.Config.Environment == "production" {
		c.Logger, err = zap.NewProduction()
	} else {
		c.Logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("failed to build logger: " + err.Error())
	}

	c.AuditLogger = audit.NewAuditLogger(c.Logger)
	c.Cache = pkg.NewCache(c.Config.RedisUrl)

	if c.Config.AuditBucketName != "" {
		archiver, err := bucket.NewArchiver(
			c.Config.AwsAccessKeyID,
			c.Config.AwsSecretKey,
			c.Config.AwsRegion,
			c.Config.AuditBucketName,
		)
		if err != nil {
			panic("failed to build notification archiver: " + err.Error())
		}
		c.Archiver = archiver
	}

	if c.Config.KafkaBrokers != "" {
		brokers := strings.Split(c.Config.KafkaBrokers, ",")
		c.Dispatcher = eventskafka.NewPublisher(c.Logger, brokers, c.Config.KafkaTopic)
	} else {
		c.Dispatcher = events.NewLogDispatcher(c.Logger)
	}

	maker, err := token.NewPasetoMaker(c.Config.SignatureToken)
	if err != nil {
		panic("failed to build token maker: " + err.Error())
	}
	c.PasetoMaker = maker
}

func (c *ContainerDI) buildRepository() {
	c.RepositoryOrder = order.NewOrderRepository(c.ConnDB)
}

func (c *ContainerDI) buildService() {
	c.ServiceOrder = order.NewOrderService(c.RepositoryOrder)

	var archiver notification.NotificationArchiver
	if c.Archiver != nil {
		archiver = c.Archiver
	}
	c.ServiceNotification = notification.NewNotificationService(
		c.RepositoryOrder,
		c.Dispatcher,
		c.AuditLogger,
		c.Cache,
		archiver,
	)
}

func (c *ContainerDI) buildHandler() {
	c.HandlerOrder = order.NewOrderHandler(c.ServiceOrder)
	c.HandlerNotification = notification.NewNotificationHandler(c.ServiceNotification)
}

// Close releases the container's long-lived resources on shutdown.
func (c *ContainerDI) Close() {
	if closer, ok := c.Dispatcher.(io.Closer); ok {
		_ = closer.Close()
	}
	if c.Cache != nil && c.Cache.Rdb != nil {
		_ = c.Cache.Rdb.Close()
	}
	if c.ConnDB != nil {
		_ = c.ConnDB.Close()
	}
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}
}
