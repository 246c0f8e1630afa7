package main

import (
	"fmt"
	"net/url"
	"os"
	"text/tabwriter"

	"nhatro/client"
	"nhatro/finance"
	"nhatro/models"

	"github.com/spf13/cobra"
)

func transactionController(opts *cliOptions) *client.Controller[models.Transaction] {
	ops := client.NewResource[models.Transaction](opts.newClient(), "/api/finances/transactions")
	return client.NewController[models.Transaction](ops, func(t models.Transaction) string { return t.ID }, client.LogNotifier{})
}

func newTransactionsCommand(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "Giao dịch thu chi",
	}

	var transactionType, startDate, endDate, search string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Liệt kê giao dịch",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := transactionController(opts)

			query := url.Values{}
			if transactionType != "" {
				query.Set("type", transactionType)
			}
			if startDate != "" {
				query.Set("start_date", startDate)
			}
			if endDate != "" {
				query.Set("end_date", endDate)
			}
			if search != "" {
				query.Set("search", search)
			}
			if err := ctrl.Load(cmd.Context(), query); err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNGÀY\tLOẠI\tDANH MỤC\tSỐ TIỀN\tMÔ TẢ")
			for _, tx := range ctrl.Items() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					tx.ID, tx.Date,
					finance.GetTypeInfo(tx.Type).Text,
					finance.GetCategoryInfo(tx.Category).Text,
					finance.FormatCurrency(tx.Amount),
					tx.Description)
			}
			return w.Flush()
		},
	}
	listCmd.Flags().StringVar(&transactionType, "type", "", "income, expense hoặc all")
	listCmd.Flags().StringVar(&startDate, "from", "", "từ ngày (2006-01-02)")
	listCmd.Flags().StringVar(&endDate, "to", "", "đến ngày (2006-01-02)")
	listCmd.Flags().StringVar(&search, "search", "", "tìm theo mô tả, mã, phòng, khách thuê")

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Tổng thu chi và tổng hợp theo danh mục",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := transactionController(opts)
			if err := ctrl.Load(cmd.Context(), nil); err != nil {
				return err
			}
			txs := ctrl.Items()

			income := finance.CalculateTotal(txs, models.TransactionIncome)
			expense := finance.CalculateTotal(txs, models.TransactionExpense)
			fmt.Printf("Tổng thu:  %s\n", finance.FormatCurrency(income))
			fmt.Printf("Tổng chi:  %s\n", finance.FormatCurrency(expense))
			fmt.Printf("Cân đối:   %s\n\n", finance.FormatCurrency(income-expense))

			for _, transactionType := range []string{models.TransactionIncome, models.TransactionExpense} {
				fmt.Printf("%s theo danh mục:\n", finance.GetTypeInfo(transactionType).Text)
				for _, summary := range finance.SummarizeByCategory(txs, transactionType) {
					fmt.Printf("  %-20s %15s  (%d%%)\n",
						finance.GetCategoryInfo(summary.Category).Text,
						finance.FormatCurrency(summary.Total),
						summary.Percent)
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.AddCommand(listCmd, summaryCmd)
	return cmd
}
