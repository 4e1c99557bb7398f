package cmd

import (
	"context"
	"time"

	"paynotify/infra"
	_midlleware "paynotify/infra/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func StartAPI(ctx context.Context, container *infra.ContainerDI) {
	e := echo.New()

	go func() {
		for {
			select {
			case <-ctx.Done():
				if err := e.Shutdown(ctx); err != nil {
					panic(err)
				}
				container.Close()
				return
			default:
				time.Sleep(1 * time.Second)
			}
		}
	}()

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowMethods: middleware.DefaultCORSConfig.AllowMethods,
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.POST(infra.WebhookRoute, container.HandlerNotification.PagBankWebhookHandler)
	e.GET("/orders/:id/payment", container.HandlerOrder.GetPaymentStatusHandler, _midlleware.CheckAuthorization(container.PasetoMaker))

	e.Logger.Infof("payment processor callbacks expected at %s", container.Config.WebhookCallbackURL())
	e.Logger.Fatal(e.Start(container.Config.ServerPort))
}
