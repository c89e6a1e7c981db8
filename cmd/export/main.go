// Command export renders a turnos.json into an xlsx workbook, one sheet per
// month, without going through the server.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jesusgarciaalemany/turnos-api-go/pkg/export"
	"github.com/jesusgarciaalemany/turnos-api-go/pkg/models"
	"github.com/jesusgarciaalemany/turnos-api-go/pkg/turnos"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load(".env")

	var (
		input  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Exporta los turnos a una hoja de cálculo",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(input)
			if err != nil {
				return fmt.Errorf("leer %s: %w", input, err)
			}

			var registros []models.Registro
			if err := json.Unmarshal(data, &registros); err != nil {
				return fmt.Errorf("parsear %s: %w", input, err)
			}

			dias := turnos.Normalizar(registros)
			f, err := export.Workbook(dias, time.Now())
			if err != nil {
				return err
			}
			defer f.Close()

			if err := f.SaveAs(output); err != nil {
				return fmt.Errorf("escribir %s: %w", output, err)
			}

			total := 0
			for _, d := range dias {
				total += len(d.Turnos)
			}
			fmt.Printf("%d turnos en %d días exportados a %s\n", total, len(dias), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "data/turnos.json", "archivo turnos.json de entrada")
	cmd.Flags().StringVarP(&output, "output", "o", "turnos.xlsx", "archivo xlsx de salida")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
