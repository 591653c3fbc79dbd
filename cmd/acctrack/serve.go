// Serve command: resolve the storage location, open the record store,
// and run the local API until interrupted.
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kridsada-n/acctrack/internal/docstore"
	"github.com/kridsada-n/acctrack/internal/server"
	"github.com/kridsada-n/acctrack/internal/settings"
	"github.com/kridsada-n/acctrack/internal/sqlite"
	"github.com/kridsada-n/acctrack/pkg/types"
)

// backupper is satisfied by stores that can snapshot themselves. The
// document store has no snapshot path, so serve feature-detects it.
type backupper interface {
	Backup(destDir string) (string, error)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the local bookkeeping API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	configDir, err := resolveConfigDir()
	if err != nil {
		return err
	}
	defaultDir, err := resolveDataDir()
	if err != nil {
		return err
	}

	mgr, err := settings.NewManager(configDir)
	if err != nil {
		return err
	}

	dir, firstRun, err := mgr.PreferredLocation(defaultDir)
	if err != nil {
		return err
	}
	if firstRun {
		log.Printf("no storage settings found, using default location %s", dir)
	}

	store, backend := selectBackend(mgr, configBackend)
	// A store that cannot open is fatal: nothing the API could do would
	// be meaningful without it.
	if err := store.Open(dir); err != nil {
		log.Fatalf("opening %s store at %s: %v", backend, dir, err)
	}
	defer store.Close()
	log.Printf("%s store open at %s", backend, dir)

	stopBackups := startAutoBackup(store, mgr)
	defer stopBackups()

	srv := server.New(store, mgr, defaultDir)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-done
		log.Println("shutting down")
		if err := srv.Shutdown(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	addr := resolveListen()
	log.Printf("listening on %s", addr)
	return srv.Listen(addr)
}

// selectBackend picks the record store implementation from the saved
// storage settings, falling back to the config.yaml backend key before
// any settings exist.
func selectBackend(mgr *settings.Manager, configBackend string) (types.Store, string) {
	s, err := mgr.StorageSettings()
	if err == nil && s != nil {
		if s.StorageType == types.StorageTypeDocument {
			return docstore.New(), types.StorageTypeDocument
		}
		return sqlite.New(), types.StorageTypeSQLite
	}
	if configBackend == types.StorageTypeDocument {
		return docstore.New(), types.StorageTypeDocument
	}
	return sqlite.New(), types.StorageTypeSQLite
}

// startAutoBackup runs periodic snapshots next to the store file when
// the settings ask for them. The returned func stops the ticker.
func startAutoBackup(store types.Store, mgr *settings.Manager) func() {
	b, ok := store.(backupper)
	if !ok {
		return func() {}
	}
	s, err := mgr.StorageSettings()
	if err != nil || s == nil || !s.AutoBackup {
		return func() {}
	}
	// A hand-edited settings file can carry an interval the save path
	// would have rejected; a ticker panics on anything non-positive.
	if s.BackupInterval < types.MinBackupIntervalHours || s.BackupInterval > types.MaxBackupIntervalHours {
		log.Printf("auto backup disabled: interval %dh out of range", s.BackupInterval)
		return func() {}
	}

	interval := time.Duration(s.BackupInterval) * time.Hour
	ticker := time.NewTicker(interval)
	quit := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				dest, err := b.Backup(store.Path())
				if err != nil {
					log.Printf("auto backup: %v", err)
					continue
				}
				log.Printf("auto backup written to %s", dest)
			case <-quit:
				return
			}
		}
	}()

	log.Printf("auto backup every %s", interval)
	return func() {
		ticker.Stop()
		close(quit)
	}
}
