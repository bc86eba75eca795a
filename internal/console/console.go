// Package console is the interactive menu terminal: one synchronous session
// issuing one statement at a time against the store.
package console

import (
	"bufio"
	"fmt"
	"io"
	"log"

	"hnl-console/internal/analytics"
	"hnl-console/internal/models"
	"hnl-console/internal/store"

	"github.com/fatih/color"
	"golang.org/x/crypto/bcrypt"
)

type Console struct {
	in       *bufio.Reader
	store    *store.Store
	engine   *analytics.Engine
	operator *models.Operator
}

func New(in io.Reader, st *store.Store, engine *analytics.Engine) *Console {
	return &Console{
		in:     bufio.NewReader(in),
		store:  st,
		engine: engine,
	}
}

func (c *Console) operatorID() uint {
	if c.operator == nil {
		return 0
	}
	return c.operator.ID
}

// Login authenticates an operator account before the menu loop starts.
func (c *Console) Login() error {
	const maxAttempts = 3
	for i := 0; i < maxAttempts; i++ {
		username := c.prompt("Operator username")
		password := c.prompt("Operator password")

		op, err := c.store.GetOperatorByUsername(username)
		if err == nil && bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(password)) == nil {
			c.operator = op
			color.Green("[AUTH] Access granted for %s (%s).", op.Username, op.Role)
			return nil
		}
		color.Red("[AUTH] Invalid credentials.")
	}
	return fmt.Errorf("authentication failed after %d attempts", maxAttempts)
}

func banner() {
	cyan := color.New(color.FgCyan)
	cyan.Println("======================================================================")
	color.Yellow("  HAWKINS NATIONAL LAB — OPS CONSOLE")
	color.Green("  Interdimensional Anomaly Monitoring System — CLASSIFIED")
	cyan.Println("======================================================================")
	fmt.Println()
}

func (c *Console) printMenu() {
	// global DTS is recomputed on demand for every render, never cached
	dts, err := c.engine.ScoreGlobal()
	if err != nil {
		color.Red("[DTS] compute failed: %v", err)
		color.Blue("[Main Menu] Select function:")
	} else {
		color.Blue("[Main Menu] Select function (DTS %d · %s):", dts.Score, dts.Band)
	}

	fmt.Println(" --- DASHBOARD / READ / ANALYTICS ---")
	fmt.Println("  1) Portal Stability Scanner")
	fmt.Println("  2) Entity Threat Analyzer")
	fmt.Println("  3) Reality Disturbance Map")
	fmt.Println("  4) Psychic Activity Dashboard")
	fmt.Println("  5) Temporal Breach Timeline")
	fmt.Println("  6) Global Search")
	fmt.Println(" --- CREATE ---")
	fmt.Println("  7) Insert new Event")
	fmt.Println("  8) Create Person")
	fmt.Println("  9) Create Artifact")
	fmt.Println(" 10) Create Entity")
	fmt.Println(" 11) Create Portal")
	fmt.Println(" 12) Create Report")
	fmt.Println(" 13) Create Experiment")
	fmt.Println(" --- LINK / UNLINK ---")
	fmt.Println(" 14) Link Event to Entity (appearance)")
	fmt.Println(" 15) Unlink Event from Entity")
	fmt.Println(" 16) Link Artifact to Event")
	fmt.Println(" 17) Unlink Artifact from Event")
	fmt.Println(" 18) Add Victim to Event")
	fmt.Println(" 19) Remove Victim from Event")
	fmt.Println(" --- UPDATE ---")
	fmt.Println(" 20) Update Event (Outcome/Severity/Portal/Location)")
	fmt.Println(" 21) Update Portal Status / Links")
	fmt.Println(" 22) Update Person (Role/Affiliation/Status)")
	fmt.Println(" 23) Update Entity (Threat_Level)")
	fmt.Println(" 24) Update Artifact (Anomaly_Level/Found_At)")
	fmt.Println(" --- DELETE / ARCHIVE ---")
	fmt.Println(" 25) Archive Event")
	fmt.Println(" 26) Archive Person")
	fmt.Println(" 27) Delete Artifact (hard delete) — confirm")
	fmt.Println(" --- ADMIN / UTIL ---")
	fmt.Println(" 28) Recompute DTS / Run maintenance")
	fmt.Println("  q) Quit")
}

// Run drives the menu loop until the operator quits or input ends.
func (c *Console) Run() error {
	if err := c.Login(); err != nil {
		return err
	}
	banner()

	for {
		c.printMenu()

		choice := c.prompt("Choice>")
		if choice == "" {
			// EOF or blank line
			if _, err := c.in.Peek(1); err != nil {
				color.Green("Exiting console.")
				return nil
			}
			continue
		}

		var err error
		switch choice {
		case "1":
			err = c.portalStabilityScanner()
		case "2":
			err = c.entityThreatAnalyzer()
		case "3":
			err = c.realityDisturbanceMap()
		case "4":
			err = c.psychicActivityDashboard()
		case "5":
			err = c.temporalBreachTimeline()
		case "6":
			err = c.globalSearch()
		case "7":
			err = c.insertEvent()
		case "8":
			err = c.createPerson()
		case "9":
			err = c.createArtifact()
		case "10":
			err = c.createEntity()
		case "11":
			err = c.createPortal()
		case "12":
			err = c.createReport()
		case "13":
			err = c.createExperiment()
		case "14":
			err = c.linkEventEntity()
		case "15":
			err = c.unlinkEventEntity()
		case "16":
			err = c.linkArtifactEvent()
		case "17":
			err = c.unlinkArtifactEvent()
		case "18":
			err = c.addVictimToEvent()
		case "19":
			err = c.removeVictimFromEvent()
		case "20":
			err = c.updateEvent()
		case "21":
			err = c.updatePortal()
		case "22":
			err = c.updatePerson()
		case "23":
			err = c.updateEntity()
		case "24":
			err = c.updateArtifact()
		case "25":
			err = c.archiveEvent()
		case "26":
			err = c.archivePerson()
		case "27":
			err = c.deleteArtifact()
		case "28":
			err = c.recomputeDTS()
		case "q", "Q":
			color.Green("Exiting console. Stay vigilant.")
			return nil
		default:
			color.Red("Unknown command. Try again.")
		}

		if err != nil {
			color.Red("Error: %v", err)
			log.Printf("operation %s failed: %v", choice, err)
		}
	}
}
