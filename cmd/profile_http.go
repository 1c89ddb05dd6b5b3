package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"profilekit/logger"
	"profilekit/models"

	"github.com/spf13/cobra"
)

var (
	httpURLs                 []string
	httpHeaders              []string
	httpCookies              []string
	httpGetResponseTemplate  string
	httpPostRequestTemplate  string
	httpPostResponseTemplate string
)

var profileHttpCmd = &cobra.Command{
	Use:   "http",
	Short: "Manage Http profiles",
	Long: `Works on the Http view of the catalog. Records of other kinds are not listed
here, and reading or editing them through this view fails.`,
}

// parseHeaderFlags turns "Name: value" strings into ordered headers.
func parseHeaderFlags(raw []string) ([]models.HttpHeader, error) {
	headers := make([]models.HttpHeader, 0, len(raw))
	for _, h := range raw {
		name, value, ok := strings.Cut(h, ":")
		if !ok {
			return nil, fmt.Errorf("header '%s' must have the form 'Name: value'", h)
		}
		headers = append(headers, models.HttpHeader{Name: strings.TrimSpace(name), Value: strings.TrimSpace(value)})
	}
	return headers, nil
}

// parseCookieFlags turns "name=value" strings into ordered cookies.
func parseCookieFlags(raw []string) ([]models.HttpCookie, error) {
	cookies := make([]models.HttpCookie, 0, len(raw))
	for _, c := range raw {
		name, value, ok := strings.Cut(c, "=")
		if !ok {
			return nil, fmt.Errorf("cookie '%s' must have the form 'name=value'", c)
		}
		cookies = append(cookies, models.HttpCookie{Name: strings.TrimSpace(name), Value: value})
	}
	return cookies, nil
}

func httpSettingsFromFlags() (models.HttpSettings, error) {
	headers, err := parseHeaderFlags(httpHeaders)
	if err != nil {
		return models.HttpSettings{}, err
	}
	cookies, err := parseCookieFlags(httpCookies)
	if err != nil {
		return models.HttpSettings{}, err
	}
	return models.HttpSettings{
		RequestHeaders:       headers,
		Urls:                 append([]string{}, httpURLs...),
		Cookies:              cookies,
		GetResponseTemplate:  httpGetResponseTemplate,
		PostRequestTemplate:  httpPostRequestTemplate,
		PostResponseTemplate: httpPostResponseTemplate,
	}, nil
}

func printHttpProfileTable(out io.Writer, profiles []models.HttpProfile) {
	writer := new(tabwriter.Writer)
	writer.Init(out, 0, 8, 1, '\t', 0)
	fmt.Fprintln(writer, "ID\tNAME\tENABLED\tURLS\tHEADERS\tCOOKIES")
	fmt.Fprintln(writer, "--\t----\t-------\t----\t-------\t-------")
	for _, p := range profiles {
		fmt.Fprintf(writer, "%d\t%s\t%t\t%s\t%d\t%d\n", p.ID, p.Name, p.Enabled, strings.Join(p.Urls, ","), len(p.RequestHeaders), len(p.Cookies))
	}
	writer.Flush()
}

var profileHttpListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List Http profiles",
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("Executing 'profile http list' command")
		service, closeDB, err := openProfileService()
		if err != nil {
			return err
		}
		defer closeDB()

		profiles, err := service.ListHttp()
		if err != nil {
			return err
		}
		if len(profiles) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No Http profiles found in the database.")
			return nil
		}
		printHttpProfileTable(cmd.OutOrStdout(), profiles)
		return nil
	},
}

var profileHttpGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one Http profile as JSON",
	Args:  cobra.ExactArgs(1),
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

		p, err := service.GetHttp(id)
		if err != nil {
			return err
		}
		return printRecord(cmd.OutOrStdout(), p, profileField)
	},
}

var profileHttpAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new Http profile",
	Example: `  profilekit profile http add --name web --url /index.html --url /docs.html \
    --header "User-Agent: Mozilla/5.0" --cookie "session={DATA}"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("Executing 'profile http add' command")
		settings, err := httpSettingsFromFlags()
		if err != nil {
			return err
		}
		service, closeDB, err := openProfileService()
		if err != nil {
			return err
		}
		defer closeDB()

		created, err := service.CreateHttp(models.HttpProfile{
			ID:           profileID,
			Name:         strings.TrimSpace(profileName),
			Description:  profileDescription,
			Enabled:      profileEnabled,
			HttpSettings: settings,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Successfully added Http profile: ID %d, Name '%s'\n", created.ID, created.Name)
		return nil
	},
}

var profileHttpEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Replace the Http fields of a profile",
	Long: `Overwrites URLs, headers, cookies and the three templates of the Http profile
with the given ID. Anything not given on the command line is cleared. Name,
description and enabled are kept; use 'profile update' for those.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}
		settings, err := httpSettingsFromFlags()
		if err != nil {
			return err
		}
		service, closeDB, err := openProfileService()
		if err != nil {
			return err
		}
		defer closeDB()

		edited, err := service.EditHttp(models.HttpProfile{ID: id, HttpSettings: settings})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Successfully edited Http profile: ID %d, %d URL(s)\n", edited.ID, len(edited.Urls))
		return nil
	},
}

var profileHttpDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Short:   "Delete a profile through the Http view",
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

		if err := service.DeleteHttp(id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Successfully deleted profile ID %d\n", id)
		return nil
	},
}

func addHttpFieldFlags(c *cobra.Command) {
	c.Flags().StringArrayVarP(&httpURLs, "url", "u", nil, "URL path, repeatable; order is kept")
	c.Flags().StringArrayVarP(&httpHeaders, "header", "H", nil, "request header as 'Name: value', repeatable")
	c.Flags().StringArrayVar(&httpCookies, "cookie", nil, "cookie as 'name=value', repeatable")
	c.Flags().StringVar(&httpGetResponseTemplate, "get-response-template", "", "template of GET responses")
	c.Flags().StringVar(&httpPostRequestTemplate, "post-request-template", "", "template of POST requests")
	c.Flags().StringVar(&httpPostResponseTemplate, "post-response-template", "", "template of POST responses")
}

func init() {
	addBaseFieldFlags(profileHttpAddCmd)
	profileHttpAddCmd.Flags().Int64Var(&profileID, "id", 0, "explicit profile ID (assigned automatically when omitted)")
	addHttpFieldFlags(profileHttpAddCmd)
	addHttpFieldFlags(profileHttpEditCmd)
	profileHttpGetCmd.Flags().StringVarP(&profileField, "field", "f", "", "gjson path of a single value to print")

	profileHttpCmd.AddCommand(profileHttpListCmd, profileHttpGetCmd, profileHttpAddCmd, profileHttpEditCmd, profileHttpDeleteCmd)
	profileCmd.AddCommand(profileHttpCmd)
}
