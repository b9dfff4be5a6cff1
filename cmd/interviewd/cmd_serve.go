package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/saulo-duarte/interview-coach/internal/config"
	"github.com/saulo-duarte/interview-coach/internal/container"
	"github.com/saulo-duarte/interview-coach/internal/progress"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API (or the Lambda handler when deployed to AWS Lambda)",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Bool("migrate", false, "Run database migrations before serving")
}

func runServe(cmd *cobra.Command, args []string) error {
	config.Init()
	settings, err := config.Load()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	c, err := container.New(ctx, settings)
	if err != nil {
		return err
	}

	if migrate, _ := cmd.Flags().GetBool("migrate"); migrate {
		if err := config.DB.WithContext(ctx).AutoMigrate(progress.Models()...); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	handler := otelhttp.NewHandler(c.Router(), "interviewd")

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(httpadapter.NewV2(handler).ProxyWithContext)
		return nil
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", settings.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		config.Logger.Infof("Listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	config.Logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
