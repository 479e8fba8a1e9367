package cmd

import (
	"errors"
	"fmt"
	"log"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Rorical/roricalc/internal/config"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage keypad color themes",
	Long:  `Manage the color themes used by the calculator display and keypad.`,
}

var listThemesCmd = &cobra.Command{
	Use:   "list",
	Short: "List all themes",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		fmt.Printf("Active Theme: %s\n\n", cfg.ActiveTheme)
		fmt.Println("Available Themes:")
		for _, name := range cfg.Names() {
			marker := ""
			if name == cfg.ActiveTheme {
				marker = " (active)"
			}
			fmt.Printf("  %s%s\n", name, marker)
		}
	},
}

var showThemeCmd = &cobra.Command{
	Use:   "show [theme-name]",
	Short: "Show theme colors",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		theme, exists := cfg.Themes[args[0]]
		if !exists {
			log.Fatalf("Theme '%s' does not exist", args[0])
		}

		fmt.Printf("Theme: %s\n", args[0])
		for _, f := range themeFields(&theme) {
			fmt.Printf("%s: %s\n", f.label, *f.value)
		}
	},
}

var addThemeCmd = &cobra.Command{
	Use:   "add [theme-name]",
	Short: "Add a new theme",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		var themeName string
		if len(args) > 0 {
			themeName = args[0]
		} else {
			prompt := promptui.Prompt{
				Label:    "Theme name",
				Validate: notEmpty,
			}
			themeName, err = prompt.Run()
			if err != nil {
				log.Fatalf("Prompt failed: %v", err)
			}
		}

		if _, exists := cfg.Themes[themeName]; exists {
			log.Fatalf("Theme '%s' already exists", themeName)
		}

		// Start from the active theme's colors
		theme, err := promptTheme(cfg.Theme())
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}
		cfg.Themes[themeName] = theme

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Theme '%s' added successfully!\n", themeName)
	},
}

var editThemeCmd = &cobra.Command{
	Use:   "edit [theme-name]",
	Short: "Edit an existing theme",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		themeName, err := themeArg(cfg, args, "Select theme to edit")
		if err != nil {
			log.Fatalf("Selection failed: %v", err)
		}

		theme, exists := cfg.Themes[themeName]
		if !exists {
			log.Fatalf("Theme '%s' does not exist", themeName)
		}

		theme, err = promptTheme(theme)
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}
		cfg.Themes[themeName] = theme

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Theme '%s' updated successfully!\n", themeName)
	},
}

var deleteThemeCmd = &cobra.Command{
	Use:   "delete [theme-name]",
	Short: "Delete a theme",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		themeName, err := themeArg(cfg, args, "Select theme to delete")
		if err != nil {
			log.Fatalf("Selection failed: %v", err)
		}

		confirmPrompt := promptui.Prompt{
			Label:     fmt.Sprintf("Delete theme '%s'? (y/N)", themeName),
			IsConfirm: true,
		}
		if _, err := confirmPrompt.Run(); err != nil {
			fmt.Println("Deletion cancelled")
			return
		}

		if err := cfg.Delete(themeName); err != nil {
			log.Fatalf("Failed to delete theme: %v", err)
		}

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Theme '%s' deleted successfully!\n", themeName)
	},
}

var switchThemeCmd = &cobra.Command{
	Use:   "switch [theme-name]",
	Short: "Switch to a different theme",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		themeName, err := themeArg(cfg, args, "Select theme to switch to")
		if err != nil {
			log.Fatalf("Selection failed: %v", err)
		}

		if err := cfg.Switch(themeName); err != nil {
			log.Fatalf("Failed to switch theme: %v", err)
		}

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Switched to theme '%s'\n", themeName)
	},
}

type themeField struct {
	label string
	value *string
}

func themeFields(theme *config.Theme) []themeField {
	return []themeField{
		{"Display", &theme.Display},
		{"Digit keys", &theme.Digit},
		{"Operator keys", &theme.Operator},
		{"Function keys", &theme.Function},
		{"Equals key", &theme.Equals},
		{"Clear keys", &theme.Clear},
		{"Status bar", &theme.Status},
	}
}

// promptTheme asks for every color, defaulting to the values in base.
func promptTheme(base config.Theme) (config.Theme, error) {
	theme := base
	for _, f := range themeFields(&theme) {
		prompt := promptui.Prompt{
			Label:    f.label + " color",
			Default:  *f.value,
			Validate: notEmpty,
		}
		value, err := prompt.Run()
		if err != nil {
			return config.Theme{}, err
		}
		*f.value = value
	}
	return theme, nil
}

// themeArg returns args[0] or lets the user pick from the existing themes.
func themeArg(cfg *config.Config, args []string, label string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	names := cfg.Names()
	if len(names) == 0 {
		return "", errors.New("no themes available")
	}

	prompt := promptui.Select{
		Label: label,
		Items: names,
	}
	_, name, err := prompt.Run()
	return name, err
}

func notEmpty(s string) error {
	if s == "" {
		return errors.New("value must not be empty")
	}
	return nil
}

func init() {
	// Add subcommands to theme
	themeCmd.AddCommand(listThemesCmd)
	themeCmd.AddCommand(showThemeCmd)
	themeCmd.AddCommand(addThemeCmd)
	themeCmd.AddCommand(editThemeCmd)
	themeCmd.AddCommand(deleteThemeCmd)
	themeCmd.AddCommand(switchThemeCmd)
}
