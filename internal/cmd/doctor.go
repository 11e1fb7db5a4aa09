package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/airiskcouncil/arcctl/internal/config"
	"github.com/airiskcouncil/arcctl/internal/contract"
	"github.com/airiskcouncil/arcctl/internal/errors"
	"github.com/airiskcouncil/arcctl/internal/session"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run diagnostics against the local setup and the API",
	Long: `Doctor checks that arcctl is ready to use:
  - configuration file parses and validates
  - the bundled API contract loads
  - the API endpoint is reachable
  - a persisted session exists

Use --output json for machine-readable results.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// DoctorCheck is a single diagnostic result.
type DoctorCheck struct {
	Name    string `json:"name"`
	Status  string `json:"status"` // "ok", "warning", "error", "missing"
	Message string `json:"message"`
}

// DoctorReport is the full diagnostic report.
type DoctorReport struct {
	Config    *DoctorCheck `json:"config"`
	Contract  *DoctorCheck `json:"contract"`
	API       *DoctorCheck `json:"api"`
	Session   *DoctorCheck `json:"session"`
	Issues    []string     `json:"issues"`
	NextSteps []string     `json:"next_steps"`
	Healthy   bool         `json:"healthy"`
}

func runDoctor(cmd *cobra.Command, args []string) error {
	report := &DoctorReport{
		Issues:    []string{},
		NextSteps: []string{},
	}

	cfg := checkDoctorConfig(report)
	checkDoctorContract(report)
	checkDoctorAPI(cmd.Context(), cfg, report)
	checkDoctorSession(report)

	report.Healthy = len(report.Issues) == 0

	if flagOutput != "text" {
		if err := emit(report); err != nil {
			return err
		}
		if !report.Healthy {
			return fmt.Errorf("diagnostics found %d issue(s)", len(report.Issues))
		}
		return nil
	}

	fmt.Println("arcctl diagnostics")
	fmt.Println()
	printDoctorCheck(report.Config)
	printDoctorCheck(report.Contract)
	printDoctorCheck(report.API)
	printDoctorCheck(report.Session)

	if len(report.NextSteps) > 0 {
		fmt.Println()
		fmt.Println("Next steps:")
		for i, step := range report.NextSteps {
			fmt.Printf("  %d. %s\n", i+1, step)
		}
	}

	fmt.Println()
	if report.Healthy {
		fmt.Println("Everything looks good.")
		return nil
	}
	return fmt.Errorf("diagnostics found %d issue(s)", len(report.Issues))
}

func checkDoctorConfig(report *DoctorReport) config.Config {
	cfg, err := config.Load()
	if err != nil {
		report.Config = &DoctorCheck{
			Name:    "Config",
			Status:  "error",
			Message: err.Error(),
		}
		report.Issues = append(report.Issues, "configuration does not load")
		report.NextSteps = append(report.NextSteps, "Fix or remove the config file, then run 'arcctl config list'")
		return config.Default()
	}
	if flagAPIURL != "" {
		cfg.APIURL = flagAPIURL
	}
	report.Config = &DoctorCheck{
		Name:    "Config",
		Status:  "ok",
		Message: fmt.Sprintf("API endpoint %s", cfg.APIURL),
	}
	return cfg
}

func checkDoctorContract(report *DoctorReport) {
	doc, err := contract.Load()
	if err != nil {
		report.Contract = &DoctorCheck{
			Name:    "Contract",
			Status:  "error",
			Message: err.Error(),
		}
		report.Issues = append(report.Issues, "bundled API contract is invalid")
		return
	}
	report.Contract = &DoctorCheck{
		Name:    "Contract",
		Status:  "ok",
		Message: fmt.Sprintf("%d documented endpoints", len(contract.Endpoints(doc))),
	}
}

func checkDoctorAPI(ctx context.Context, cfg config.Config, report *DoctorReport) {
	app, err := newAppContext()
	if err != nil {
		report.API = &DoctorCheck{
			Name:    "API",
			Status:  "error",
			Message: err.Error(),
		}
		report.Issues = append(report.Issues, "API client could not be built")
		return
	}

	healthCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	start := time.Now()
	_, err = app.client.Me(healthCtx)
	latency := time.Since(start)

	// A 401 still proves the server answered; only transport failures
	// count as unreachable.
	if err != nil && !errors.IsCode(err, errors.ErrCodeSessionExpired) && !errors.IsCode(err, errors.ErrCodeNotLoggedIn) {
		report.API = &DoctorCheck{
			Name:    "API",
			Status:  "error",
			Message: fmt.Sprintf("%s is not reachable: %v", cfg.APIURL, err),
		}
		report.Issues = append(report.Issues, "API endpoint is not reachable")
		report.NextSteps = append(report.NextSteps, "Check your network, or point --api-url at the right endpoint")
		return
	}

	report.API = &DoctorCheck{
		Name:    "API",
		Status:  "ok",
		Message: fmt.Sprintf("reachable (latency %dms)", latency.Milliseconds()),
	}
}

func checkDoctorSession(report *DoctorReport) {
	dir, err := config.Dir()
	if err != nil {
		report.Session = &DoctorCheck{
			Name:    "Session",
			Status:  "error",
			Message: err.Error(),
		}
		return
	}

	jar := session.NewCookieStore(dir).Path()
	if _, err := os.Stat(jar); err != nil {
		report.Session = &DoctorCheck{
			Name:    "Session",
			Status:  "missing",
			Message: "no saved session",
		}
		report.NextSteps = append(report.NextSteps, "Sign in with 'arcctl auth login'")
		return
	}
	report.Session = &DoctorCheck{
		Name:    "Session",
		Status:  "ok",
		Message: fmt.Sprintf("cookie jar at %s", jar),
	}
}

func printDoctorCheck(check *DoctorCheck) {
	if check == nil {
		return
	}
	icon := " "
	switch check.Status {
	case "ok":
		icon = "✓"
	case "warning":
		icon = "⚠"
	case "error":
		icon = "✗"
	case "missing":
		icon = "○"
	}
	fmt.Printf("  %s %s: %s\n", icon, check.Name, check.Message)
}
