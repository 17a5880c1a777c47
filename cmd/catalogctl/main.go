package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"exocatalog-service/internal/domain/entity"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

const defaultServer = "http://localhost:8080"

var (
	serverURL  string
	outputJSON bool
)

// apiEnvelope mirrors the service's uniform response wrapper
type apiEnvelope struct {
	Status int             `json:"status"`
	Msg    string          `json:"msg"`
	Data   json.RawMessage `json:"data"`
}

var rootCmd = &cobra.Command{
	Use:   "catalogctl",
	Short: "Query a running exocatalog-service instance",
	Long: `catalogctl is a command-line client for the exocatalog HTTP API.
It searches the planet catalog, inspects individual planets and systems,
and reports the service's data provenance.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", defaultServer, "base URL of the exocatalog service")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "print raw JSON instead of tables")

	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(getCmd())
	rootCmd.AddCommand(systemCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(statusCmd())
	rootCmd.AddCommand(refreshCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func apiGet(path string, query url.Values, out interface{}) error {
	client := &http.Client{Timeout: 30 * time.Second}
	endpoint := serverURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	resp, err := client.Get(endpoint)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var env apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("bad response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s", env.Msg)
	}

	if outputJSON {
		pretty, _ := json.MarshalIndent(json.RawMessage(env.Data), "", "  ")
		fmt.Println(string(pretty))
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

// planetList matches the service's search payload
type planetList struct {
	Planets []*entity.PlanetRecord `json:"planets"`
	Total   int                    `json:"total"`
	Source  string                 `json:"source"`
}

func searchCmd() *cobra.Command {
	var (
		planetType      string
		minHabitability float64
		hz              string
		sortBy          string
		desc            bool
		limit           int
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the planet catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			if len(args) == 1 {
				query.Set("q", args[0])
			}
			if planetType != "" {
				query.Set("type", planetType)
			}
			if cmd.Flags().Changed("min-habitability") {
				query.Set("minHabitability", fmt.Sprintf("%g", minHabitability))
			}
			if hz != "" {
				query.Set("hz", hz)
			}
			if sortBy != "" {
				query.Set("sortBy", sortBy)
			}
			if desc {
				query.Set("sortDesc", "true")
			}
			if limit > 0 {
				query.Set("limit", fmt.Sprintf("%d", limit))
			}

			var list planetList
			if err := apiGet("/api/v1/planets", query, &list); err != nil {
				return err
			}
			if outputJSON {
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"Name", "Type", "Radius", "Distance (ly)", "Habitability", "HZ"})
			for _, p := range list.Planets {
				hzLabel := ""
				if p.HZStatus != nil {
					hzLabel = p.HZStatus.Label
				}
				t.AppendRow(table.Row{
					p.Name, p.Type,
					formatFloat(p.Radius), formatFloat(p.Distance),
					fmt.Sprintf("%.3f", p.Habitability), hzLabel,
				})
			}
			t.Render()
			fmt.Printf("%d of %d planets (source: %s)\n", len(list.Planets), list.Total, list.Source)
			return nil
		},
	}

	cmd.Flags().StringVar(&planetType, "type", "", "filter by planet type")
	cmd.Flags().Float64Var(&minHabitability, "min-habitability", 0, "minimum habitability score")
	cmd.Flags().StringVar(&hz, "hz", "", "habitable zone membership (conservative|optimistic)")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort field (name|distance|radius|mass|habitability|esi|year)")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	cmd.Flags().IntVar(&limit, "limit", 25, "maximum results")
	return cmd
}

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <planet name>",
		Short: "Show one planet in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var record entity.PlanetRecord
			if err := apiGet("/api/v1/planets/"+url.PathEscape(args[0]), nil, &record); err != nil {
				return err
			}
			if outputJSON {
				return nil
			}

			pretty, err := json.MarshalIndent(record, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(pretty))
			return nil
		},
	}
}

// systemPayload matches the service's system endpoint
type systemPayload struct {
	System  string                 `json:"system"`
	Planets []*entity.PlanetRecord `json:"planets"`
}

func systemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "system <system name>",
		Short: "List every planet of a host system",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var payload systemPayload
			if err := apiGet("/api/v1/systems/"+url.PathEscape(args[0]), nil, &payload); err != nil {
				return err
			}
			if outputJSON {
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"Name", "Type", "Period (d)", "Semi-major axis (AU)", "Eq. temp (K)"})
			for _, p := range payload.Planets {
				t.AppendRow(table.Row{
					p.Name, p.Type,
					formatFloat(p.Period), formatFloat(p.SemiMajorAxis), formatFloat(p.EqTemp),
				})
			}
			t.Render()
			fmt.Printf("System %s: %d planets\n", payload.System, len(payload.Planets))
			return nil
		},
	}
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show catalog aggregates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var stats entity.CatalogStats
			if err := apiGet("/api/v1/stats", nil, &stats); err != nil {
				return err
			}
			if outputJSON {
				return nil
			}

			fmt.Printf("Total planets:        %d\n", stats.Total)
			fmt.Printf("Average habitability: %.3f\n", stats.AverageHabitability)
			fmt.Printf("Highly habitable:     %d\n", stats.HighlyHabitable)
			fmt.Printf("High ESI:             %d\n", stats.HighESI)
			fmt.Printf("In optimistic HZ:     %d\n", stats.InOptimisticHZ)
			if stats.Nearest != nil {
				fmt.Printf("Nearest:              %s (%.1f ly)\n", stats.Nearest.Name, entity.Deref(stats.Nearest.Distance))
			}
			if stats.MostHabitable != nil {
				fmt.Printf("Most habitable:       %s (%.3f)\n", stats.MostHabitable.Name, stats.MostHabitable.Habitability)
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"Type", "Count"})
			for planetType, count := range stats.ByType {
				t.AppendRow(table.Row{planetType, count})
			}
			t.SortBy([]table.SortBy{{Name: "Count", Mode: table.DscNumeric}})
			t.Render()
			return nil
		},
	}
}

// statusPayload matches the service's status endpoint
type statusPayload struct {
	Source    string     `json:"source"`
	Records   int        `json:"records"`
	FetchedAt *time.Time `json:"fetchedAt,omitempty"`
	FromCache bool       `json:"fromCache"`
	Degraded  bool       `json:"degraded"`
	Error     string     `json:"error,omitempty"`
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show data provenance of the running service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var status statusPayload
			if err := apiGet("/api/v1/status", nil, &status); err != nil {
				return err
			}
			if outputJSON {
				return nil
			}

			fmt.Printf("Source:     %s\n", status.Source)
			fmt.Printf("Records:    %d\n", status.Records)
			fmt.Printf("From cache: %v\n", status.FromCache)
			if status.FetchedAt != nil {
				fmt.Printf("Fetched at: %s\n", status.FetchedAt.Format(time.RFC3339))
			}
			if status.Degraded {
				fmt.Printf("Degraded:   yes (%s)\n", status.Error)
			}
			return nil
		},
	}
}

func refreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Trigger a background refresh from the archive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := &http.Client{Timeout: 30 * time.Second}
			resp, err := client.Post(serverURL+"/api/v1/refresh", "application/json", nil)
			if err != nil {
				return fmt.Errorf("request failed: %w", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusAccepted {
				return fmt.Errorf("unexpected status %d", resp.StatusCode)
			}
			fmt.Println("Refresh started")
			return nil
		},
	}
}

func formatFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}
