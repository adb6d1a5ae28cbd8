// seed loads guest directory records from a YAML file so a fresh
// deployment has something to search. Existing guests are matched by
// external ID and updated in place.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"mealdesk/internal/config"
	"mealdesk/internal/logger"
	"mealdesk/internal/model"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm/clause"
)

type seedGuest struct {
	ExternalID    string `yaml:"external_id"`
	FirstName     string `yaml:"first_name"`
	LastName      string `yaml:"last_name"`
	PreferredName string `yaml:"preferred_name"`
	HousingStatus string `yaml:"housing_status"`
	AgeGroup      string `yaml:"age_group"`
	Gender        string `yaml:"gender"`
}

func main() {
	configFile := flag.String("config", "", "config file path")
	guestFile := flag.String("guests", "etc/guests.yaml", "guest directory YAML file")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(config.LogConfig{Level: "info", Console: true})
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	data, err := os.ReadFile(*guestFile)
	if err != nil {
		log.Fatal(err)
	}
	var seeds []seedGuest
	if err := yaml.Unmarshal(data, &seeds); err != nil {
		log.Fatal(err)
	}

	db, err := cfg.OpenGormDB()
	if err != nil {
		log.Fatal(err)
	}

	for _, sg := range seeds {
		if sg.ExternalID == "" {
			log.Fatalf("guest %s %s has no external_id", sg.FirstName, sg.LastName)
		}
		g := model.Guest{
			ID:            uuid.NewString(),
			ExternalID:    sg.ExternalID,
			FirstName:     sg.FirstName,
			LastName:      sg.LastName,
			FullName:      strings.TrimSpace(sg.FirstName + " " + sg.LastName),
			HousingStatus: sg.HousingStatus,
			AgeGroup:      sg.AgeGroup,
			Gender:        sg.Gender,
		}
		if sg.PreferredName != "" {
			g.PreferredName = &sg.PreferredName
		}
		err := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "external_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"first_name", "last_name", "full_name", "preferred_name",
				"housing_status", "age_group", "gender",
			}),
		}).Create(&g).Error
		if err != nil {
			log.Fatalf("seed guest %s: %v", sg.ExternalID, err)
		}
	}

	fmt.Printf("seeded %d guests\n", len(seeds))
}
