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

func roomController(opts *cliOptions) *client.Controller[models.Room] {
	ops := client.NewResource[models.Room](opts.newClient(), "/api/rooms")
	return client.NewController[models.Room](ops, func(r models.Room) string { return r.ID }, client.LogNotifier{})
}

func newRoomsCommand(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "Quản lý phòng",
	}

	var status, search string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Liệt kê phòng",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := roomController(opts)

			query := url.Values{}
			if status != "" {
				query.Set("status", status)
			}
			if search != "" {
				query.Set("search", search)
			}
			if err := ctrl.Load(cmd.Context(), query); err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTÊN\tSỐ PHÒNG\tGIÁ\tTRẠNG THÁI")
			for _, room := range ctrl.Items() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					room.ID, room.Name, room.RoomNumber,
					finance.FormatCurrency(room.Price),
					models.GetRoomStatusInfo(room.Status).Text)
			}
			return w.Flush()
		},
	}
	listCmd.Flags().StringVar(&status, "status", "", "lọc theo trạng thái")
	listCmd.Flags().StringVar(&search, "search", "", "tìm theo tên hoặc số phòng")

	var name, roomNumber string
	var price int64
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Thêm phòng mới",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := roomController(opts)
			created, err := ctrl.Create(cmd.Context(), map[string]any{
				"name":       name,
				"roomNumber": roomNumber,
				"price":      price,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Đã thêm phòng %s (ID %s)\n", created.Name, created.ID)
			return nil
		},
	}
	createCmd.Flags().StringVar(&name, "name", "", "tên phòng")
	createCmd.Flags().StringVar(&roomNumber, "number", "", "số phòng")
	createCmd.Flags().Int64Var(&price, "price", 0, "giá thuê (VND)")
	createCmd.MarkFlagRequired("name")
	createCmd.MarkFlagRequired("number")
	createCmd.MarkFlagRequired("price")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Xóa phòng",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return roomController(opts).Delete(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(listCmd, createCmd, deleteCmd)
	return cmd
}
