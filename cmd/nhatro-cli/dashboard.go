package main

import (
	"fmt"

	"nhatro/client"
	"nhatro/finance"
	"nhatro/models"
	"nhatro/reports"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// newDashboardCommand tải phòng, hợp đồng và giao dịch song song
// rồi in bảng điều khiển tổng hợp
func newDashboardCommand(opts *cliOptions) *cobra.Command {
	var months int

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Bảng điều khiển tổng quan",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient := opts.newClient()
			roomOps := client.NewResource[models.Room](apiClient, "/api/rooms")
			contractOps := client.NewResource[models.Contract](apiClient, "/api/contracts")
			transactionOps := client.NewResource[models.Transaction](apiClient, "/api/finances/transactions")

			var (
				rooms     []models.Room
				contracts []models.Contract
				txs       []models.Transaction
			)

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				var err error
				rooms, _, err = roomOps.List(ctx, nil)
				return err
			})
			g.Go(func() error {
				var err error
				contracts, _, err = contractOps.List(ctx, nil)
				return err
			})
			g.Go(func() error {
				var err error
				txs, _, err = transactionOps.List(ctx, nil)
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}

			occupancy := reports.CalculateOccupancy(rooms)
			fmt.Printf("Phòng: %d, đang thuê %d (lấp đầy %.1f%%)\n",
				occupancy.TotalRooms, occupancy.OccupiedRooms, occupancy.OccupancyRate)

			active := reports.FilterContracts(contracts, reports.ContractTabActive, "")
			fmt.Printf("Hợp đồng hiệu lực: %d/%d, tiền thuê hằng tháng %s\n\n",
				len(active), len(contracts),
				finance.FormatCurrency(reports.TotalMonthlyRent(contracts)))

			income := finance.CalculateTotal(txs, models.TransactionIncome)
			expense := finance.CalculateTotal(txs, models.TransactionExpense)
			fmt.Printf("Tổng thu: %s  Tổng chi: %s  Cân đối: %s\n\n",
				finance.FormatCurrency(income),
				finance.FormatCurrency(expense),
				finance.FormatCurrency(income-expense))

			fmt.Printf("Thu chi %d tháng gần nhất:\n", months)
			for _, bucket := range finance.GenerateMonthlyData(txs, months) {
				fmt.Printf("  %-8s thu %15s  chi %15s\n",
					bucket.Month,
					finance.FormatCurrency(bucket.Income),
					finance.FormatCurrency(bucket.Expense))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&months, "months", finance.DefaultMonthWindow, "số tháng thống kê")
	return cmd
}
