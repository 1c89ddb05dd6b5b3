package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter" // For aligned table output

	"profilekit/logger"
	"profilekit/models"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

// --- Flags ---
var (
	profileID          int64
	profileName        string
	profileDescription string
	profileEnabled     bool
	profileField       string
)

// --- Base Command ---

var profileCmd = &cobra.Command{
	Use:     "profile",
	Short:   "Manage communication profiles",
	Long:    `Allows you to list, add, get, update, or delete profiles of every kind stored in the profilekit database.`,
	Aliases: []string{"prof"},
}

// --- List Command ---

var profileListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List all stored profiles",
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("Executing 'profile list' command")
		service, closeDB, err := openProfileService()
		if err != nil {
			return err
		}
		defer closeDB()

		profiles, err := service.List()
		if err != nil {
			return err
		}
		if len(profiles) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No profiles found in the database.")
			return nil
		}
		printProfileTable(cmd.OutOrStdout(), profiles)
		return nil
	},
}

func printProfileTable(out io.Writer, profiles []models.Profile) {
	writer := new(tabwriter.Writer)
	writer.Init(out, 0, 8, 1, '\t', 0)
	fmt.Fprintln(writer, "ID\tKIND\tNAME\tENABLED\tDESCRIPTION")
	fmt.Fprintln(writer, "--\t----\t----\t-------\t-----------")
	for _, p := range profiles {
		fmt.Fprintf(writer, "%d\t%s\t%s\t%t\t%s\n", p.ID, p.Kind, p.Name, p.Enabled, p.Description)
	}
	writer.Flush()
}

// printRecord writes v as indented JSON, or only the value at the gjson path
// field when one is given.
func printRecord(out io.Writer, v interface{}, field string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}
	if field == "" {
		fmt.Fprintln(out, string(data))
		return nil
	}
	result := gjson.GetBytes(data, field)
	if !result.Exists() {
		return fmt.Errorf("field '%s' not present in record", field)
	}
	fmt.Fprintln(out, result.String())
	return nil
}

func parseIDArg(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid profile ID '%s'", arg)
	}
	return id, nil
}

// --- Get Command ---

var profileGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one profile as JSON",
	Long: `Prints the profile with the given ID. Use --field with a gjson path
(for example 'urls.0' or 'request_headers.#.name') to print a single value.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}
		service, closeDB, err := openProfileService()
		if err != nil {
			return err
		}
		defer closeDB()

		p, err := service.Get(id)
		if err != nil {
			return err
		}
		return printRecord(cmd.OutOrStdout(), p, profileField)
	},
}

// --- Add Command ---

var profileAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new base profile",
	Long:  `Adds a base profile. Use 'profile http add' for Http profiles.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("Executing 'profile add' command")
		service, closeDB, err := openProfileService()
		if err != nil {
			return err
		}
		defer closeDB()

		created, err := service.Create(models.Profile{
			ID:          profileID,
			Name:        strings.TrimSpace(profileName),
			Description: profileDescription,
			Enabled:     profileEnabled,
			Kind:        models.ProfileKindBase,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Successfully added profile: ID %d, Name '%s'\n", created.ID, created.Name)
		return nil
	},
}

// --- Update Command ---

var profileUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace name, description and enabled of a profile",
	Long: `Replaces the base fields of the profile with the given ID. Fields not given
on the command line are reset to their zero value. Http fields are kept.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}
		service, closeDB, err := openProfileService()
		if err != nil {
			return err
		}
		defer closeDB()

		updated, err := service.Update(models.Profile{
			ID:          id,
			Name:        strings.TrimSpace(profileName),
			Description: profileDescription,
			Enabled:     profileEnabled,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Successfully updated profile: ID %d, Name '%s'\n", updated.ID, updated.Name)
		return nil
	},
}

// --- Delete Command ---

var profileDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Short:   "Delete a profile of any kind",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}
		service, closeDB, err := openProfileService()
		if err != nil {
			return err
		}
		defer closeDB()

		if err := service.Delete(id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Successfully deleted profile ID %d\n", id)
		return nil
	},
}

func addBaseFieldFlags(c *cobra.Command) {
	c.Flags().StringVarP(&profileName, "name", "n", "", "profile name (required)")
	c.Flags().StringVarP(&profileDescription, "description", "d", "", "profile description")
	c.Flags().BoolVar(&profileEnabled, "enabled", true, "whether the profile is enabled")
	_ = c.MarkFlagRequired("name")
}

func init() {
	addBaseFieldFlags(profileAddCmd)
	profileAddCmd.Flags().Int64Var(&profileID, "id", 0, "explicit profile ID (assigned automatically when omitted)")
	addBaseFieldFlags(profileUpdateCmd)
	profileGetCmd.Flags().StringVarP(&profileField, "field", "f", "", "gjson path of a single value to print")

	profileCmd.AddCommand(profileListCmd, profileGetCmd, profileAddCmd, profileUpdateCmd, profileDeleteCmd)
	rootCmd.AddCommand(profileCmd)
}
