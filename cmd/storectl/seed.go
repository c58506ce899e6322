package main

import (
	"spi-eshop-be/internal/repository/unitofwork"
	"spi-eshop-be/internal/service"
	"spi-eshop-be/pkg/cache"
	"spi-eshop-be/pkg/department"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo products, orders and customers into empty tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		log := cliLogger()
		uow := unitofwork.NewRepositoryFactory(db)
		events := service.NewNatsEventPublisher(nil, log)

		products := service.NewProductService(uow, department.Default(), cache.NoopClient{}, 0, false, events, log)
		orders := service.NewOrderService(uow, false, events, log)

		n, err := products.Seed(cmd.Context())
		if err != nil {
			return err
		}
		o, c, err := orders.Seed(cmd.Context())
		if err != nil {
			return err
		}

		if n+o+c == 0 {
			warnf("tables already populated, nothing seeded\n")
			return nil
		}
		okf("✔ seeded %d products, %d orders, %d customers\n", n, o, c)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
