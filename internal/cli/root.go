package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"medimanager/internal/config"
	"medimanager/internal/platform/logger"
	"medimanager/internal/ports/storage"
	"medimanager/internal/router"
)

// RootOptions tiene los flags globales y las dependencias que los tests pueden reemplazar.
type RootOptions struct {
	Format string // "text" | "json"

	// OpenStore abre el record store configurado. Por defecto usa config.Load + router.OpenStore.
	OpenStore func(ctx context.Context) (storage.RecordStore, error)
}

var ValidFormats = []string{"text", "json"}

// NewRootCommand arma medictl con la configuración por defecto.
func NewRootCommand() *cobra.Command {
	return NewRootCommandWith(&RootOptions{OpenStore: openConfiguredStore})
}

func NewRootCommandWith(opts *RootOptions) *cobra.Command {
	if opts.OpenStore == nil {
		opts.OpenStore = openConfiguredStore
	}

	cmd := &cobra.Command{
		Use:   "medictl",
		Short: "MediManager admin and client CLI",
		Long: `medictl administra usuarios de MediManager y consulta el resumen del día.

user add escribe directo en el store configurado (STORAGE_DRIVER, DATA_DIR, ...).
overview habla con un servidor corriendo por HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true, // main imprime el error
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewUserCommand(opts))
	cmd.AddCommand(NewHashPasswordCommand(opts))
	cmd.AddCommand(NewOverviewCommand(opts))

	return cmd
}

func openConfiguredStore(ctx context.Context) (storage.RecordStore, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Logging.Level),
		Format: logger.ParseFormat(cfg.Logging.Format),
		App:    "medictl",
	})
	return router.OpenStore(ctx, cfg.Storage, log)
}
