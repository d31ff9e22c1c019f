package viewer

import (
	"log"

	cfg "github.com/automoto/thirdperson/config"
	"github.com/quasilyte/gdata"
)

const tuningKey = "tuning"

var gdataManager *gdata.Manager

// InitPersistence opens the per-user data directory used for saved tuning.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "thirdperson",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadTuning overlays previously saved tuning onto the config globals.
// Reports whether anything was applied. Saved tuning that no longer
// validates is skipped and the current values are kept.
func LoadTuning() (bool, error) {
	if gdataManager == nil {
		return false, nil
	}

	data, err := gdataManager.LoadItem(tuningKey)
	if err != nil {
		log.Printf("Warning: Could not load tuning: %v", err)
		return false, err
	}
	if data == nil {
		return false, nil
	}

	if err := cfg.DecodeValid(data, cfg.FormatYAML); err != nil {
		log.Printf("Warning: Saved tuning rejected: %v", err)
		return false, err
	}
	return true, nil
}

// SaveTuning writes the current config globals.
func SaveTuning() error {
	if gdataManager == nil {
		return nil
	}

	data, err := cfg.Encode(cfg.FormatYAML)
	if err != nil {
		log.Printf("Warning: Could not serialize tuning: %v", err)
		return err
	}
	if err := gdataManager.SaveItem(tuningKey, data); err != nil {
		log.Printf("Warning: Could not save tuning: %v", err)
		return err
	}
	log.Printf("Saved tuning (%d bytes)", len(data))
	return nil
}
