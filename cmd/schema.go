package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"content-sync/core/logger"

	"github.com/spf13/cobra"
)

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Show how each content type is matched",
	Long:  `Lists the remote content types with the unique field used as identity and the field that receives the document body.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		svc, err := newService(cmd.Context(), cfg, logg)
		if err != nil {
			return err
		}

		infos, err := svc.Schemas(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load schemas: %w", err)
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			data, err := json.MarshalIndent(infos, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "CONTENT TYPE\tIDENTITY\tBODY\tPROBLEM")
		for _, info := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", info.ContentType, dash(info.IdentityField), dash(info.BodyField), dash(info.Error))
		}
		return w.Flush()
	},
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	schemaCmd.Flags().Bool("json", false, "print JSON instead of a table")
	RootCmd.AddCommand(schemaCmd)
}
