// Command seed provisions the sample records used for manual testing: one
// user (the API has no provisioning endpoint, users are created out-of-band),
// one wheel specification and one bogie checksheet. Safe to run repeatedly.
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/iliyamo/kpa-form-data/internal/config"
	"github.com/iliyamo/kpa-form-data/internal/database"
	"github.com/iliyamo/kpa-form-data/internal/model"
	"github.com/iliyamo/kpa-form-data/internal/repository"
	"github.com/iliyamo/kpa-form-data/internal/utils"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("database open: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}

	users := repository.NewUserRepo(db)
	wheelSpecs := repository.NewWheelSpecRepo(db)
	bogies := repository.NewBogieChecksheetRepo(db)

	// Sample user: phone 7760873976, password to_share@123.
	exists, err := users.ExistsByUserID(ctx, "user_id_123")
	if err != nil {
		log.Fatalf("check sample user: %v", err)
	}
	if exists {
		log.Printf("sample user already exists")
	} else {
		hash, err := utils.HashPassword("to_share@123", cfg.BcryptCost)
		if err != nil {
			log.Fatalf("hash sample password: %v", err)
		}
		u := &model.User{
			UserID:       "user_id_123",
			PhoneNumber:  "7760873976",
			PasswordHash: hash,
			FullName:     "Railway Inspector",
			Email:        "inspector@railway.com",
			IsActive:     true,
		}
		if _, err := users.Create(ctx, u); err != nil {
			log.Fatalf("create sample user: %v", err)
		}
		log.Printf("sample user created (user_id_123)")
	}

	wheel := &model.WheelSpecification{
		FormNumber:            "WHEEL-2025-001",
		SubmittedBy:           "user_id_123",
		SubmittedDate:         "2025-07-03",
		TreadDiameterNew:      "915 (900-1000)",
		LastShopIssueSize:     "837 (800-900)",
		CondemningDia:         "825 (800-900)",
		WheelGauge:            "1600 (+2,-1)",
		VariationSameAxle:     "0.5",
		VariationSameBogie:    "5",
		VariationSameCoach:    "13",
		WheelProfile:          "29.4 Flange Thickness",
		IntermediateWWP:       "20 TO 28",
		BearingSeatDiameter:   "130.043 TO 130.068",
		RollerBearingOuterDia: "280 (+0.0/-0.035)",
		RollerBearingBoreDia:  "130 (+0.0/-0.025)",
		RollerBearingWidth:    "93 (+0/-0.250)",
		AxleBoxHousingBoreDia: "280 (+0.030/+0.052)",
		WheelDiscWidth:        "127 (+4/-0)",
	}
	switch err := wheelSpecs.Create(ctx, wheel); err {
	case nil:
		log.Printf("sample wheel specification created (WHEEL-2025-001)")
	case repository.ErrDuplicateFormNumber:
		log.Printf("sample wheel specification already exists")
	default:
		log.Fatalf("create sample wheel specification: %v", err)
	}

	bogie := &model.BogieChecksheet{
		FormNumber:     "BOGIE-2025-001",
		InspectionBy:   "user_id_456",
		InspectionDate: "2025-07-03",
		BogieDetails: model.BogieDetails{
			BogieNo:            "BG1234",
			MakerYearBuilt:     "RDSO/2018",
			IncomingDivAndDate: "NR / 2025-06-25",
			DeficitComponents:  "None",
			DateOfIOH:          "2025-07-01",
		},
		BogieChecksheet: model.BogieChecksheetFields{
			BogieFrameCondition:      "Good",
			Bolster:                  "Good",
			BolsterSuspensionBracket: "Cracked",
			LowerSpringSeat:          "Good",
			AxleGuide:                "Worn",
		},
		BMBCChecksheet: model.BMBCChecksheetFields{
			CylinderBody:   "WORN OUT",
			PistonTrunnion: "GOOD",
			AdjustingTube:  "DAMAGED",
			PlungerSpring:  "GOOD",
		},
	}
	switch err := bogies.Create(ctx, bogie); err {
	case nil:
		log.Printf("sample bogie checksheet created (BOGIE-2025-001)")
	case repository.ErrDuplicateFormNumber:
		log.Printf("sample bogie checksheet already exists")
	default:
		log.Fatalf("create sample bogie checksheet: %v", err)
	}

	log.Printf("seed complete")
}
