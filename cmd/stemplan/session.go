// Session commands manage planning sessions in the local store.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orthoplan/stemplan/internal/sqlite"
	"github.com/orthoplan/stemplan/pkg/types"
)

var (
	flagSessionName    string
	flagSessionProduct string
	flagSessionSide    string
	flagSessionStem    string
	flagSessionHead    string
	flagSessionHistory bool
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage planning sessions",
}

var sessionCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a planning session",
	Long: `Create opens a new planning session seeded with the product's
default implant configuration for the chosen side.

Example:
  stemplan session create --name "Doe, left THA" --product optimys --side left`,
	Args: cobra.NoArgs,
	RunE: runSessionCreate,
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List planning sessions",
	Args:  cobra.NoArgs,
	RunE:  runSessionList,
}

var sessionShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show a session and its current configuration",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionShow,
}

var sessionSaveCmd = &cobra.Command{
	Use:   "save <session-id>",
	Short: "Save a new configuration revision to a session",
	Long: `Save validates the given selections against the session's product
and appends the result to the session's configuration history.

Example:
  stemplan session save 0190… --stem 130507
  stemplan session save 0190… --stem 130521 --head 130532`,
	Args: cobra.ExactArgs(1),
	RunE: runSessionSave,
}

var sessionDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a session and its configuration history",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionDelete,
}

func init() {
	sessionCreateCmd.Flags().StringVar(&flagSessionName, "name", "", "session name")
	sessionCreateCmd.Flags().StringVar(&flagSessionProduct, "product", "", "product line (default: configured default)")
	sessionCreateCmd.Flags().StringVar(&flagSessionSide, "side", "", "implantation side (right, left)")

	sessionSaveCmd.Flags().StringVar(&flagSessionStem, "stem", "", "stem label")
	sessionSaveCmd.Flags().StringVar(&flagSessionHead, "head", "", "head label")
	sessionSaveCmd.Flags().StringVar(&flagSessionSide, "side", "", "implantation side override")

	sessionShowCmd.Flags().BoolVar(&flagSessionHistory, "history", false, "show the full configuration history")

	sessionCmd.AddCommand(sessionCreateCmd)
	sessionCmd.AddCommand(sessionListCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionSaveCmd)
	sessionCmd.AddCommand(sessionDeleteCmd)
}

func runSessionCreate(cmd *cobra.Command, args []string) error {
	p, err := productByName(flagSessionProduct)
	if err != nil {
		return err
	}
	side, err := types.ParseSide(flagSessionSide)
	if err != nil {
		return fmt.Errorf("invalid side %q", flagSessionSide)
	}

	cfg := p.FillAndValidate(p.DefaultConfig(side))
	if !cfg.Valid {
		return fmt.Errorf("no valid default configuration for %s side %s", p.Name, side)
	}

	store, err := openStore()
	if err != nil {
		runtimeFatal("session create", err)
	}
	defer store.Close()

	session, err := store.CreateSession(types.Session{
		Name:    flagSessionName,
		Product: p.Name,
		Side:    side,
	}, cfg)
	if err != nil {
		runtimeFatal("session create", err)
	}

	if flagJSON {
		return printJSON(session)
	}
	fmt.Println("created session", session.SessionID)
	return nil
}

func runSessionList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		runtimeFatal("session list", err)
	}
	defer store.Close()

	sessions, err := store.ListSessions()
	if err != nil {
		runtimeFatal("session list", err)
	}

	if flagJSON {
		return printJSON(sessions)
	}

	for _, s := range sessions {
		fmt.Printf("%s  %-10s %-5s %s\n", s.SessionID, s.Product, s.Side, s.Name)
	}
	return nil
}

// sessionReport pairs a session with its stored configuration state.
type sessionReport struct {
	Session *types.Session        `json:"session"`
	Config  *types.ImplantConfig  `json:"config,omitempty"`
	History []types.ImplantConfig `json:"history,omitempty"`
}

func runSessionShow(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		runtimeFatal("session show", err)
	}
	defer store.Close()

	session, err := store.GetSession(args[0])
	if err != nil {
		if errors.Is(err, sqlite.ErrSessionNotFound) {
			return fmt.Errorf("unknown session %q", args[0])
		}
		runtimeFatal("session show", err)
	}

	report := sessionReport{Session: session}
	if flagSessionHistory {
		report.History, err = store.ConfigHistory(session.SessionID)
		if err != nil {
			runtimeFatal("session show", err)
		}
	} else {
		cfg, err := store.LatestConfig(session.SessionID)
		if err != nil {
			runtimeFatal("session show", err)
		}
		report.Config = &cfg
	}

	if flagJSON {
		return printJSON(report)
	}

	fmt.Printf("session  %s\n", session.SessionID)
	fmt.Printf("name     %s\n", session.Name)
	fmt.Printf("product  %s\n", session.Product)
	fmt.Printf("side     %s\n", session.Side)
	if report.Config != nil {
		fmt.Printf("stem     %d\n", report.Config.Stem)
		fmt.Printf("head     %d\n", report.Config.Head)
	}
	if report.History != nil {
		for i, cfg := range report.History {
			fmt.Printf("rev %-3d  stem=%d head=%d valid=%v\n", i+1, cfg.Stem, cfg.Head, cfg.Valid)
		}
	}
	return nil
}

func runSessionSave(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		runtimeFatal("session save", err)
	}
	defer store.Close()

	session, err := store.GetSession(args[0])
	if err != nil {
		if errors.Is(err, sqlite.ErrSessionNotFound) {
			return fmt.Errorf("unknown session %q", args[0])
		}
		runtimeFatal("session save", err)
	}

	p, err := catalog.Product(session.Product)
	if err != nil {
		runtimeFatal("session save", fmt.Errorf("%w: %q", err, session.Product))
	}

	cfg, err := store.LatestConfig(session.SessionID)
	if err != nil {
		runtimeFatal("session save", err)
	}

	if flagSessionSide != "" {
		cfg.RequestedSide, err = types.ParseSide(flagSessionSide)
		if err != nil {
			return fmt.Errorf("invalid side %q", flagSessionSide)
		}
	}
	if flagSessionStem != "" {
		cfg.Stem, err = parseLabel(flagSessionStem)
		if err != nil {
			return err
		}
	}
	if flagSessionHead != "" {
		cfg.Head, err = parseLabel(flagSessionHead)
		if err != nil {
			return err
		}
	}

	cfg = p.FillAndValidate(cfg)
	if !cfg.Valid {
		return fmt.Errorf("selections do not form a valid %s configuration", p.Name)
	}

	if err := store.SaveConfig(session.SessionID, cfg); err != nil {
		runtimeFatal("session save", err)
	}

	if flagJSON {
		return printJSON(cfg)
	}
	fmt.Printf("saved stem=%d head=%d to session %s\n", cfg.Stem, cfg.Head, session.SessionID)
	return nil
}

func runSessionDelete(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		runtimeFatal("session delete", err)
	}
	defer store.Close()

	if err := store.DeleteSession(args[0]); err != nil {
		if errors.Is(err, sqlite.ErrSessionNotFound) {
			return fmt.Errorf("unknown session %q", args[0])
		}
		runtimeFatal("session delete", err)
	}

	fmt.Println("deleted session", args[0])
	return nil
}
