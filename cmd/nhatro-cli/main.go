// nhatro-cli là client dòng lệnh cho back office: xem và thao tác
// phòng, người dùng, giao dịch qua API, cộng bảng điều khiển tổng hợp.
package main

import (
	"os"
	"time"

	"nhatro/client"
	"nhatro/config"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

type cliOptions struct {
	ServerURL     string
	Timeout       time.Duration
	RetryAttempts int
	RetryDelay    time.Duration
}

func (o *cliOptions) newClient() *client.Client {
	return client.New(client.Options{
		BaseURL:       o.ServerURL,
		Timeout:       o.Timeout,
		RetryAttempts: o.RetryAttempts,
		RetryDelay:    o.RetryDelay,
	})
}

func main() {
	// Mặc định lấy từ mục client của cấu hình, cờ dòng lệnh ghi đè được
	clientCfg := config.MustLoadConfig("").Client
	opts := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:     "nhatro-cli",
		Short:   "Client dòng lệnh quản lý nhà trọ",
		Version: version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.ServerURL, "server", clientCfg.BaseURL, "địa chỉ máy chủ API")
	rootCmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", clientCfg.Timeout, "thời gian chờ mỗi request")
	rootCmd.PersistentFlags().IntVar(&opts.RetryAttempts, "retry", clientCfg.RetryAttempts, "số lần thử lại các thao tác ghi")
	rootCmd.PersistentFlags().DurationVar(&opts.RetryDelay, "retry-delay", clientCfg.RetryDelay, "độ trễ cơ sở giữa các lần thử lại")

	rootCmd.AddCommand(newRoomsCommand(opts))
	rootCmd.AddCommand(newUsersCommand(opts))
	rootCmd.AddCommand(newTransactionsCommand(opts))
	rootCmd.AddCommand(newDashboardCommand(opts))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
