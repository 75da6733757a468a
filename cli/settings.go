// ABOUTME: Settings and reset CLI commands
// ABOUTME: Shows and edits app settings, resets data to the built-in seeds
package cli

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/paradiigm/cardstack/models"
	"github.com/paradiigm/cardstack/store"
)

// ShowSettingsCommand prints the current settings.
func ShowSettingsCommand(s *store.Store, args []string) error {
	st := s.Settings()
	fmt.Printf("Theme:                %s\n", st.Theme)
	fmt.Printf("Font size:            %s\n", st.FontSize)
	fmt.Printf("Language:             %s\n", st.Language)
	fmt.Printf("Default contact type: %s\n", st.DefaultContactType)
	fmt.Printf("Snap and go:          %t\n", st.SnapAndGo)
	fmt.Printf("Auto-save interval:   %d\n", st.AutoSaveInterval)
	fmt.Printf("Email notifications:  %t\n", st.NotificationPreferences.EmailNotifications)
	fmt.Printf("Reminder alerts:      %t\n", st.NotificationPreferences.ReminderAlerts)
	fmt.Printf("Event updates:        %t\n", st.NotificationPreferences.EventUpdates)
	return nil
}

// UpdateSettingsCommand edits settings fields.
func UpdateSettingsCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("update-settings", flag.ExitOnError)
	theme := fs.String("theme", "", "Theme (System, Slate, Ocean, Forest, Rose, Sunset)")
	fontSize := fs.String("font-size", "", "Font size (sm, base, lg)")
	language := fs.String("language", "", "Language (en, es, fr)")
	contactType := fs.String("contact-type", "", "Default contact type for new contacts")
	interval := fs.Int("autosave", -1, "Auto-save interval in minutes")
	_ = fs.Parse(args)

	st := s.Settings()
	if *theme != "" {
		st.Theme = models.Theme(*theme)
	}
	if *fontSize != "" {
		st.FontSize = models.FontSize(*fontSize)
	}
	if *language != "" {
		st.Language = models.Language(*language)
	}
	if *contactType != "" {
		if !models.ValidContactType(models.ContactType(*contactType)) {
			return fmt.Errorf("unknown contact type: %s", *contactType)
		}
		st.DefaultContactType = models.ContactType(*contactType)
	}
	if *interval >= 0 {
		st.AutoSaveInterval = *interval
	}

	s.UpdateSettings(st)
	fmt.Println("Updated settings")
	return nil
}

// ResetCommand wipes all data back to the built-in seeds. Settings are
// kept. Asks for confirmation unless --force is given.
func ResetCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("reset", flag.ExitOnError)
	force := fs.Bool("force", false, "Skip confirmation")
	_ = fs.Parse(args)

	if !*force {
		fmt.Print("This deletes all contacts, companies, events, and lists. Continue? [y/N] ")
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if answer := strings.ToLower(strings.TrimSpace(line)); answer != "y" && answer != "yes" {
			fmt.Println("Aborted")
			return nil
		}
	}

	s.Reset()
	fmt.Println("Reset to initial data")
	return nil
}
