package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nvdnvd00/agent-kits/internal/kit"
	"github.com/nvdnvd00/agent-kits/internal/skills"
	"github.com/nvdnvd00/agent-kits/internal/term"
)

var skillsDir string

// skillsCmd manages installed skills
var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Manage installed skills",
	Long: `Lists, enables, and disables skills in the installed kit.

Disabling moves the skill directory into skills/.disabled/ so it can be
re-enabled later without reinstalling. The skills directory is found via
the installed kit unless --skills-dir is given.`,
}

var skillsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active skills",
	RunE:  runSkillsList,
}

var skillsDisabledCmd = &cobra.Command{
	Use:   "disabled",
	Short: "List disabled skills",
	RunE:  runSkillsDisabled,
}

var skillsEnableCmd = &cobra.Command{
	Use:   "enable <skill>",
	Short: "Re-enable a disabled skill",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkillsEnable,
}

var skillsDisableCmd = &cobra.Command{
	Use:   "disable <skill>",
	Short: "Disable a skill",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkillsDisable,
}

var skillsSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search skills by name or description",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkillsSearch,
}

var skillsInfoCmd = &cobra.Command{
	Use:   "info <skill>",
	Short: "Show one skill in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkillsInfo,
}

// resolveManager locates the skills directory, preferring an explicit
// --skills-dir over kit discovery from the current directory.
func resolveManager() (*skills.Manager, error) {
	dir := skillsDir
	if dir == "" {
		root, err := kit.FindRoot(".")
		if err != nil {
			return nil, fmt.Errorf("no installed kit found (use --skills-dir): %w", err)
		}
		dir = filepath.Join(root, "skills")
	}
	return skills.NewManager(dir), nil
}

func runSkillsList(cmd *cobra.Command, args []string) error {
	mgr, err := resolveManager()
	if err != nil {
		return err
	}
	infos, err := mgr.Active()
	if err != nil {
		return err
	}
	printSkillList(infos, "no skills installed")
	return nil
}

func runSkillsDisabled(cmd *cobra.Command, args []string) error {
	mgr, err := resolveManager()
	if err != nil {
		return err
	}
	infos, err := mgr.Disabled()
	if err != nil {
		return err
	}
	printSkillList(infos, "no disabled skills")
	return nil
}

func runSkillsEnable(cmd *cobra.Command, args []string) error {
	mgr, err := resolveManager()
	if err != nil {
		return err
	}
	if err := mgr.Enable(args[0]); err != nil {
		return err
	}
	term.Success(os.Stdout, "enabled %s", args[0])
	return nil
}

func runSkillsDisable(cmd *cobra.Command, args []string) error {
	mgr, err := resolveManager()
	if err != nil {
		return err
	}
	if err := mgr.Disable(args[0]); err != nil {
		return err
	}
	term.Warn(os.Stdout, "disabled %s", args[0])
	return nil
}

func runSkillsSearch(cmd *cobra.Command, args []string) error {
	mgr, err := resolveManager()
	if err != nil {
		return err
	}
	infos, err := mgr.Search(args[0])
	if err != nil {
		return err
	}
	printSkillList(infos, fmt.Sprintf("no skills matching %q", args[0]))
	return nil
}

func runSkillsInfo(cmd *cobra.Command, args []string) error {
	mgr, err := resolveManager()
	if err != nil {
		return err
	}
	info, err := mgr.Describe(args[0])
	if err != nil {
		return err
	}

	out := os.Stdout
	term.Section(out, info.Name)
	if info.Description != "" {
		term.Dim(out, "  %s", info.Description)
	}
	term.Dim(out, "  path: %s", info.Path)
	if !info.HasSkillMD {
		term.Warn(out, "missing SKILL.md")
	}
	if len(info.Scripts) > 0 {
		term.Dim(out, "  scripts: %s", strings.Join(info.Scripts, ", "))
	}
	return nil
}

func printSkillList(infos []skills.Info, empty string) {
	out := os.Stdout
	if len(infos) == 0 {
		term.Dim(out, "%s", empty)
		return
	}
	for _, info := range infos {
		marker := ""
		if info.HasScripts {
			marker = " [scripts]"
		}
		desc := info.Description
		if desc != "" {
			desc = " - " + desc
		}
		fmt.Fprintf(out, "  %s%s%s\n", info.Name, marker, desc)
		if !info.HasSkillMD {
			term.Warn(out, "  %s is missing SKILL.md", info.Name)
		}
	}
}

func init() {
	skillsCmd.PersistentFlags().StringVar(&skillsDir, "skills-dir", "", "Skills directory (default: discovered from the installed kit)")
	skillsCmd.AddCommand(skillsListCmd)
	skillsCmd.AddCommand(skillsDisabledCmd)
	skillsCmd.AddCommand(skillsEnableCmd)
	skillsCmd.AddCommand(skillsDisableCmd)
	skillsCmd.AddCommand(skillsSearchCmd)
	skillsCmd.AddCommand(skillsInfoCmd)
	rootCmd.AddCommand(skillsCmd)
}
