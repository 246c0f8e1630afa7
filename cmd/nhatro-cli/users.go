package main

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"text/tabwriter"

	"nhatro/client"
	"nhatro/models"

	"github.com/spf13/cobra"
)

func userController(opts *cliOptions) *client.Controller[models.User] {
	ops := client.NewStatusResource[models.User](opts.newClient(), "/api/users")
	return client.NewController[models.User](ops, func(u models.User) string { return u.ID }, client.LogNotifier{})
}

func newUsersCommand(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Quản lý người dùng",
	}

	var page, limit int
	var search string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Liệt kê người dùng (phân trang phía máy chủ)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := userController(opts)

			query := url.Values{}
			query.Set("page", strconv.Itoa(page))
			query.Set("limit", strconv.Itoa(limit))
			if search != "" {
				query.Set("search", search)
			}
			if err := ctrl.Load(cmd.Context(), query); err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTÊN\tEMAIL\tVAI TRÒ\tTRẠNG THÁI")
			for _, user := range ctrl.Items() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					user.ID, user.Name, user.Email,
					models.GetUserRoleInfo(user.Role).Text,
					models.GetUserStatusInfo(user.Status).Text)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			pageInfo := ctrl.Page()
			fmt.Printf("Trang %d (mỗi trang %d), tổng %d người dùng\n", pageInfo.Page, pageInfo.Limit, pageInfo.Total)
			return nil
		},
	}
	listCmd.Flags().IntVar(&page, "page", 1, "trang")
	listCmd.Flags().IntVar(&limit, "limit", 10, "số dòng mỗi trang")
	listCmd.Flags().StringVar(&search, "search", "", "tìm theo tên, email, điện thoại")

	statusCmd := &cobra.Command{
		Use:   "status <id> <active|inactive>",
		Short: "Khóa hoặc kích hoạt tài khoản",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := userController(opts).SetStatus(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Printf("%s: %s\n", updated.Name, models.GetUserStatusInfo(updated.Status).Text)
			return nil
		},
	}

	cmd.AddCommand(listCmd, statusCmd)
	return cmd
}
