package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/printvault/printvault/internal/configs"
	"github.com/printvault/printvault/internal/configstore"
	"github.com/printvault/printvault/internal/keystore"
	logger "github.com/printvault/printvault/internal/logging"
	"github.com/printvault/printvault/internal/secrets"
	"github.com/printvault/printvault/internal/ui"

	"github.com/briandowns/spinner"
)

var (
	dataDirFlag string
	verbose     bool
	debug       bool
	Logger      logger.Logger
)

// startSpinner creates and starts a spinner with the given message when not
// in verbose or debug mode. Returns the spinner and a function that should
// be deferred to clean up.
//
// spinner.FinalMSG values do NOT need trailing newlines; the cleanup
// function calls ui.EnsureNewline on the final message before printing it.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	// Ignore color errors - continue without a colored spinner if it fails.
	_ = s.Color("cyan")

	if !verbose && !debug {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		// Stop the spinner first to clear the spinner line.
		if !verbose && !debug {
			s.Stop()
		}

		// Print final message to stdout (for tests to capture).
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// openStores resolves the data directory and returns the key store and
// config store rooted there.
func openStores() (*keystore.Store, *configstore.Store, string, error) {
	dataDir, err := configs.ResolveDataDir(dataDirFlag)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to resolve data directory: %w", err)
	}
	Logger.Debugf("Using data directory: %s", dataDir)
	return keystore.New(dataDir, Logger), configstore.New(dataDir, Logger), dataDir, nil
}

// openCipher ensures key material exists and returns a cipher over it.
func openCipher(ks *keystore.Store) (*secrets.Cipher, error) {
	material, err := ks.Ensure()
	if err != nil {
		return nil, fmt.Errorf("failed to ensure key material: %w", err)
	}
	return secrets.NewCipher(material.Key, Logger)
}

// notInitializedMessage is the shared final message for commands that need
// an existing configuration document.
func notInitializedMessage() string {
	return ui.Error.Sprint("✗") + " No configuration document found\n" +
		ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("printvault init") + " first"
}
