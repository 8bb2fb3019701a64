package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/khoahotran/portfolio-builder/internal/application/usecase/backup"
	"github.com/khoahotran/portfolio-builder/internal/domain/portfolio"
)

func (c *CLI) listCommand() *cobra.Command {
	var (
		search   string
		skills   []string
		role     string
		template string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List portfolios, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tpl := portfolio.Template(strings.ToLower(strings.TrimSpace(template)))
			if tpl != "" && !tpl.Valid() {
				return fmt.Errorf("unknown template %q", template)
			}

			store, err := c.openStore(cmd.Context())
			if err != nil {
				return err
			}

			list := store.Query(portfolio.Query{
				Search:  search,
				Filters: portfolio.Filters{Skills: skills, Role: role, Template: tpl},
			})

			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTEMPLATE\tNAME\tTITLE\tSKILLS")
			for _, p := range list {
				names := make([]string, len(p.Skills))
				for i, s := range p.Skills {
					names[i] = s.Name
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Template, p.Hero.Name, p.Hero.Title, strings.Join(names, ", "))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			printf(out, "%s\n", cyan(fmt.Sprintf("%d of %d portfolios", len(list), store.Len())))
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "q", "", "free-text search over name, title, bio and skills")
	cmd.Flags().StringSliceVar(&skills, "skill", nil, "match any of these skills (repeatable)")
	cmd.Flags().StringVar(&role, "role", "", "substring of the title or bio")
	cmd.Flags().StringVar(&template, "template", "", "modern, creative, elegant, tech or artistic")
	return cmd
}

func (c *CLI) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one portfolio as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openStore(cmd.Context())
			if err != nil {
				return err
			}
			p, ok := store.GetByID(args[0])
			if !ok {
				return fmt.Errorf("portfolio %q not found", args[0])
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(p)
		},
	}
}

func (c *CLI) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one portfolio",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openStore(cmd.Context())
			if err != nil {
				return err
			}
			found, err := store.Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !found {
				printf(cmd.OutOrStdout(), "%s\n", yellow("nothing to delete: "+args[0]))
				return nil
			}
			printf(cmd.OutOrStdout(), "%s %s\n", green("deleted"), args[0])
			return nil
		},
	}
}

func (c *CLI) resetCommand() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Replace every stored portfolio with the sample set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("reset discards all portfolios, pass --yes to confirm")
			}
			store, err := c.openStore(cmd.Context())
			if err != nil {
				return err
			}
			if err := store.Reset(cmd.Context()); err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "%s %d sample portfolios\n", green("reset:"), store.Len())
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}

func (c *CLI) exportCommand() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the stored snapshot as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := c.openRepo(cmd.Context())
			if err != nil {
				return err
			}
			list, err := repo.Load(cmd.Context())
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(list, "", "  ")
			if err != nil {
				return err
			}

			if out == "" || out == "-" {
				_, err := cmd.OutOrStdout().Write(append(data, '\n'))
				return err
			}
			if err := afero.WriteFile(c.fs, out, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			printf(cmd.ErrOrStderr(), "%s %d portfolios to %s\n", green("exported"), len(list), bold(out))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (stdout when empty)")
	return cmd
}

func (c *CLI) backupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Upload the stored snapshot to Cloudinary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := c.openRepo(cmd.Context())
			if err != nil {
				return err
			}
			up, err := c.openUploader()
			if err != nil {
				return err
			}
			res, err := backup.NewBackupUseCase(repo, up, c.logger()).Execute(cmd.Context())
			if err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "%s %d portfolios -> %s\n", green("backed up"), res.Count, res.URL)
			return nil
		},
	}
}
