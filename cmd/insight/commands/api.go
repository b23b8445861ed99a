package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sjlee/krx-insight/internal/api"
	"github.com/sjlee/krx-insight/internal/api/handlers"
	"github.com/sjlee/krx-insight/internal/scoring"
	"github.com/sjlee/krx-insight/internal/survey"
	"github.com/sjlee/krx-insight/internal/trend"
	"github.com/sjlee/krx-insight/pkg/config"
	"github.com/sjlee/krx-insight/pkg/logger"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "API 서버 시작",
	Long: `REST API 서버를 시작합니다.

Endpoints:
  GET  /health                        - Health check
  GET  /api/survey/questions          - 설문 문항 조회
  POST /api/survey/classify           - 투자 성향 분류
  POST /api/analysis/recommendations  - 성향별 종목 추천
  POST /api/analysis/signals          - 추세 신호 생성
  POST /api/analysis/summary          - 시장 요약 통계

Example:
  go run ./cmd/insight api
  go run ./cmd/insight api --port 8091`,
	RunE: runAPIServer,
}

var (
	apiPort string
)

func init() {
	rootCmd.AddCommand(apiCmd)

	// Flags
	apiCmd.Flags().StringVar(&apiPort, "port", "", "API 서버 포트 (기본값: 설정)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	fmt.Println("=== KRX Insight API Server ===")

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Override port if flag is set
	if apiPort != "" {
		cfg.Port = apiPort
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	log.WithFields(map[string]interface{}{
		"port": cfg.Port,
		"env":  cfg.Env,
	}).Info("Initializing API server")

	// 3. Create core components
	classifier := survey.NewClassifier(log)
	scorer := scoring.NewScorer(log)
	generator := trend.NewGenerator(log)

	// 4. Create handlers and router
	surveyHandler := handlers.NewSurveyHandler(classifier, log)
	analysisHandler := handlers.NewAnalysisHandler(scorer, generator, log)
	router := api.NewRouter(surveyHandler, analysisHandler, cfg, log)

	// 5. Start server
	server := api.New(cfg, log, router)

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start()
	}()

	// 6. Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		log.WithField("signal", sig.String()).Info("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}

	fmt.Println("✅ API server stopped")
	return nil
}
