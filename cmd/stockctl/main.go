// stockctl consulta el corte de stock bajo del inventario y emite órdenes de
// reposición desde la terminal. Trabaja contra el mismo API que usa el
// servidor con SOURCE_DRIVER=api; cada invocación hace un refresco puntual.
package main

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	stockapp "github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/application/stock"
	stockdomain "github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/domain/stock"
	"github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/infrastructure/httpcatalog"
)

func newAPIURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "api-url",
		Usage:   "Base del API de inventario",
		Value:   "http://localhost:3000",
		EnvVars: []string{"SOURCE_API_URL"},
	}
}

func newTimeoutFlag() *cli.IntFlag {
	return &cli.IntFlag{
		Name:    "timeout",
		Usage:   "Timeout en segundos de las llamadas al origen",
		Value:   10,
		EnvVars: []string{"SOURCE_TIMEOUT_SECONDS"},
	}
}

func newReasonFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "motivo",
		Usage: "Motivo que acompaña la orden de reposición",
	}
}

func thresholdFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Float64Flag{
			Name:    "critical",
			Usage:   "Umbral crítico (fracción stock/mínimo)",
			Value:   0.10,
			EnvVars: []string{"STOCK_CRITICAL_THRESHOLD"},
		},
		&cli.Float64Flag{
			Name:    "low",
			Usage:   "Umbral bajo",
			Value:   0.30,
			EnvVars: []string{"STOCK_LOW_THRESHOLD"},
		},
		&cli.Float64Flag{
			Name:    "warning",
			Usage:   "Umbral de advertencia",
			Value:   1.00,
			EnvVars: []string{"STOCK_WARNING_THRESHOLD"},
		},
	}
}

// buildEngine arma el motor contra el API remoto y hace el refresco inicial.
func buildEngine(c *cli.Context) (*stockapp.Engine, error) {
	thresholds := stockdomain.Thresholds{
		Critical: decimal.NewFromFloat(c.Float64("critical")),
		Low:      decimal.NewFromFloat(c.Float64("low")),
		Warning:  decimal.NewFromFloat(c.Float64("warning")),
	}
	if err := thresholds.Validate(); err != nil {
		return nil, err
	}

	client := httpcatalog.NewClient(c.String("api-url"), time.Duration(c.Int("timeout"))*time.Second)
	engine := stockapp.NewEngine(client, client, thresholds, 4)
	if _, err := engine.Refresh(c.Context); err != nil {
		return nil, err
	}
	return engine, nil
}

func alertsCommand() *cli.Command {
	return &cli.Command{
		Name:  "alerts",
		Usage: "Lista la vista filtrada y ordenada del stock bajo",
		Flags: append([]cli.Flag{
			newAPIURLFlag(),
			newTimeoutFlag(),
			&cli.StringFlag{Name: "status", Usage: "Etiqueta o código de estado (ej. Crítico, OUT_OF_STOCK)"},
			&cli.StringFlag{Name: "sort", Usage: "Criterio de orden: critical | name | missing", Value: "critical"},
			&cli.StringFlag{Name: "order", Usage: "Dirección: asc | desc", Value: "asc"},
		}, thresholdFlags()...),
		Action: func(c *cli.Context) error {
			engine, err := buildEngine(c)
			if err != nil {
				return err
			}
			defer engine.Close()

			engine.SetFilter(stockapp.Filter{
				Status:    c.String("status"),
				SortBy:    c.String("sort"),
				SortOrder: c.String("order"),
			})

			alerts := engine.FilteredView()
			if len(alerts) == 0 {
				fmt.Println("sin registros para los criterios dados")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNOMBRE\tESTADO\tSTOCK\tMÍNIMO\tFALTAN")
			for _, a := range alerts {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					a.ID, a.Name, a.StatusLabel,
					decimalOrDash(a.CurrentStock), decimalOrDash(a.MinStock), a.MissingUnits)
			}
			return w.Flush()
		},
	}
}

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Muestra las estadísticas agregadas del corte",
		Flags: append([]cli.Flag{newAPIURLFlag(), newTimeoutFlag()}, thresholdFlags()...),
		Action: func(c *cli.Context) error {
			engine, err := buildEngine(c)
			if err != nil {
				return err
			}
			defer engine.Close()

			meta := engine.SnapshotMeta()
			stats := engine.Statistics()
			if stats == nil {
				fmt.Printf("registros: %d (ninguno con datos completos; sin agregados)\n", meta.TotalRecords)
				return nil
			}

			fmt.Printf("registros: %d (completos %d, sin datos %d; %d descartados sin id)\n",
				stats.TotalRecords, stats.CompleteRecords, stats.IndeterminateRecords, meta.DiscardedRecords)
			fmt.Printf("alertas: agotado %d, crítico %d, bajo %d, advertencia %d\n",
				stats.OutOfStockCount, stats.CriticalCount, stats.LowCount, stats.WarningCount)
			fmt.Printf("valor en riesgo: %s\n", stats.ValueAtRisk)
			fmt.Printf("unidades faltantes: %s\n", stats.MissingUnits)
			fmt.Printf("nivel promedio: %s%%\n", stats.AverageStockPct.Round(2))
			if stats.MostCritical != nil {
				fmt.Printf("más crítico: %s (%s)\n", stats.MostCritical.Name, stats.MostCritical.StatusLabel)
			}
			return nil
		},
	}
}

func suggestCommand() *cli.Command {
	return &cli.Command{
		Name:      "suggest",
		Usage:     "Calcula la cantidad de reposición sugerida para un registro",
		ArgsUsage: "<id>",
		Flags:     append([]cli.Flag{newAPIURLFlag(), newTimeoutFlag()}, thresholdFlags()...),
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("se espera exactamente un id de registro")
			}
			engine, err := buildEngine(c)
			if err != nil {
				return err
			}
			defer engine.Close()

			detail, err := engine.Detail(c.Args().First())
			if err != nil {
				return err
			}
			fmt.Printf("%s (%s): stock %s, mínimo %s -> sugerido %s\n",
				detail.Name, detail.StatusLabel,
				decimalOrDash(detail.CurrentStock), decimalOrDash(detail.MinStock), detail.SuggestedQty)
			return nil
		},
	}
}

func restockCommand() *cli.Command {
	return &cli.Command{
		Name:      "restock",
		Usage:     "Emite una orden de reposición para un registro puntual",
		ArgsUsage: "<id>",
		Flags: append([]cli.Flag{
			newAPIURLFlag(),
			newTimeoutFlag(),
			newReasonFlag(),
			&cli.StringFlag{Name: "qty", Usage: "Cantidad a reponer (vacío = la sugerida)", Value: ""},
		}, thresholdFlags()...),
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("se espera exactamente un id de registro")
			}
			engine, err := buildEngine(c)
			if err != nil {
				return err
			}
			defer engine.Close()

			id := c.Args().First()
			qty := decimal.Zero
			if raw := c.String("qty"); raw != "" {
				qty, err = decimal.NewFromString(raw)
				if err != nil {
					return fmt.Errorf("cantidad inválida %q: %w", raw, err)
				}
			} else {
				qty, err = engine.SuggestQuantity(id)
				if err != nil {
					return err
				}
			}

			intent, err := engine.Restock(c.Context, id, qty, c.String("motivo"))
			if err != nil {
				return err
			}
			fmt.Printf("orden %s emitida: %s x %s\n", intent.ID, intent.ProductName, intent.Quantity)
			return nil
		},
	}
}

func criticalCommand() *cli.Command {
	return &cli.Command{
		Name:  "critical",
		Usage: "Emite órdenes para todos los registros críticos o agotados",
		Flags: append([]cli.Flag{newAPIURLFlag(), newTimeoutFlag(), newReasonFlag()}, thresholdFlags()...),
		Action: func(c *cli.Context) error {
			engine, err := buildEngine(c)
			if err != nil {
				return err
			}
			defer engine.Close()

			report, err := engine.RestockAllCritical(c.Context, c.String("motivo"))
			if err != nil {
				return err
			}
			for _, item := range report.Items {
				if item.Success {
					fmt.Printf("ok   %s: %s x %s\n", item.RecordID, item.ProductName, item.Quantity)
				} else {
					fmt.Printf("fail %s: %s\n", item.RecordID, item.Error)
				}
			}
			fmt.Printf("órdenes: %d emitidas, %d fallidas, %d omitidas sin déficit\n",
				report.SuccessCount, report.FailureCount, report.SkippedCount)
			return nil
		},
	}
}

func decimalOrDash(d *decimal.Decimal) string {
	if d == nil {
		return "-"
	}
	return d.String()
}

func main() {
	app := &cli.App{
		Name:  "stockctl",
		Usage: "Consulta y reposición del stock bajo desde la terminal",
		Commands: []*cli.Command{
			alertsCommand(),
			statsCommand(),
			suggestCommand(),
			restockCommand(),
			criticalCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
