package cmd

import (
	"diamond/worker"
	"diamond/worker/cashier"
	"diamond/worker/message"
	"diamond/worker/payee"
	"diamond/worker/priceoracle"
	"diamond/worker/syncer"

	"github.com/fox-one/pkg/logger"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "diamond job worker",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		log := logger.FromContext(ctx)
		ctx = logger.WithContext(ctx, log)

		database := provideDatabase()
		defer database.Close()

		system := provideSystem()
		dapp := provideDapp()

		propertyStore := providePropertyStore(database)
		userStore := provideUserStore(database)
		walletStore := provideWalletStore(database)
		tokenStore := provideTokenStore(database)
		blacklistStore := provideBlacklistStore(database)
		priceStore := providePriceStore(database)
		proposalStore := provideProposalStore(database)
		transactionStore := provideTransactionStore(database)
		oracleSignerStore := provideOracleSignerStore(database)
		messageStore := provideMessageStore(database)

		walletService := provideWalletService(dapp)
		messageService := provideMessageService(dapp.Client)
		oracleService := providePriceOracleService(priceStore)
		proposalService := provideProposalService(system, dapp.Client, messageStore)

		batch, _ := cmd.Flags().GetInt("cashier.batch")
		capacity, _ := cmd.Flags().GetInt64("cashier.capacity")

		workers := []worker.Worker{
			syncer.New(walletStore, walletService, propertyStore, system.ClientID),
			cashier.New(walletStore, walletService, cashier.Config{
				Batch:    batch,
				Capacity: capacity,
			}),
			message.New(messageStore, messageService),
			payee.NewPayee(database, system, dapp, propertyStore, userStore, walletStore,
				tokenStore, blacklistStore, priceStore, proposalStore, transactionStore,
				oracleSignerStore, walletService, proposalService, oracleService),
		}

		if cfg.PriceOracle.SecretKey != "" {
			workers = append(workers, priceoracle.New(
				system,
				provideOracleFeederWallet(),
				provideOracleSecretKey(),
				cfg.PriceOracle.SignerIndex,
				priceStore,
				oracleService,
			))
		}

		g, ctx := errgroup.WithContext(ctx)
		for _, w := range workers {
			w := w
			g.Go(func() error {
				return w.Run(ctx)
			})
		}

		if err := g.Wait(); err != nil {
			cmd.PrintErrln("run worker error:", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)

	workerCmd.Flags().Int("cashier.batch", 100, "custom batch for worker cashier")
	workerCmd.Flags().Int64("cashier.capacity", 1, "custom capacity for worker cashier")
}
