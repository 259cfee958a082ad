package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/lib/pq"

	"github.com/realtyhub/export-api/config"
)

// Seeds a small demo graph: one office with address and contacts, one broker
// with degrees and contacts, and two properties (one with a hidden price).
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	var officeID string
	err = db.QueryRow(`SELECT id FROM office WHERE name = $1`, "Downtown Realty").Scan(&officeID)
	if err == nil {
		fmt.Printf("demo office already present: id=%s\n", officeID)
		return
	}
	if err != sql.ErrNoRows {
		log.Fatalf("failed to check office: %v", err)
	}

	var officeAddrID string
	if err := db.QueryRow(`
		INSERT INTO address (country, city, street, number)
		VALUES ('Netherlands', 'Amsterdam', 'Keizersgracht', 123)
		RETURNING id
	`).Scan(&officeAddrID); err != nil {
		log.Fatalf("failed to seed office address: %v", err)
	}

	if err := db.QueryRow(`
		INSERT INTO office (name, address_id, date_opening, tags)
		VALUES ('Downtown Realty', $1, '2015-04-01', $2)
		RETURNING id
	`, officeAddrID, pq.StringArray{"residential", "commercial"}).Scan(&officeID); err != nil {
		log.Fatalf("failed to seed office: %v", err)
	}

	if _, err := db.Exec(`
		INSERT INTO email (email, type, office_id) VALUES ('info@downtownrealty.example', 'work', $1)
	`, officeID); err != nil {
		log.Fatalf("failed to seed office email: %v", err)
	}
	if _, err := db.Exec(`
		INSERT INTO phone_number (number, type, office_id) VALUES ('+31201234567', 'office', $1)
	`, officeID); err != nil {
		log.Fatalf("failed to seed office phone: %v", err)
	}

	var brokerID string
	if err := db.QueryRow(`
		INSERT INTO broker (first_name, last_name, office_id, is_mls)
		VALUES ('Ann', 'Lee', $1, true)
		RETURNING id
	`, officeID).Scan(&brokerID); err != nil {
		log.Fatalf("failed to seed broker: %v", err)
	}
	if _, err := db.Exec(`
		INSERT INTO broker_degree (broker_id, degree_name) VALUES ($1, 'MBA')
	`, brokerID); err != nil {
		log.Fatalf("failed to seed broker degree: %v", err)
	}
	if _, err := db.Exec(`
		INSERT INTO email (email, type, broker_id) VALUES ('ann.lee@downtownrealty.example', 'work', $1)
	`, brokerID); err != nil {
		log.Fatalf("failed to seed broker email: %v", err)
	}

	seedProperty(db, officeID, brokerID, "Amsterdam", "Herengracht", 45, 750000, true)
	seedProperty(db, officeID, brokerID, "Utrecht", "Oudegracht", 12, 425000, false)

	fmt.Printf("seeded office=%s broker=%s\n", officeID, brokerID)
}

func seedProperty(db *sql.DB, officeID, brokerID, city, street string, number, price int, publicPrice bool) {
	var gisID string
	if err := db.QueryRow(`
		INSERT INTO gis (latitude, longitude) VALUES (52.3702, 4.8952) RETURNING id
	`).Scan(&gisID); err != nil {
		log.Fatalf("failed to seed gis: %v", err)
	}

	var addrID string
	if err := db.QueryRow(`
		INSERT INTO address (country, city, street, number, gis_id)
		VALUES ('Netherlands', $1, $2, $3, $4)
		RETURNING id
	`, city, street, number, gisID).Scan(&addrID); err != nil {
		log.Fatalf("failed to seed property address: %v", err)
	}

	var propertyID string
	if err := db.QueryRow(`
		INSERT INTO property (price, is_public_price, office_id, broker_id, address_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, price, publicPrice, officeID, brokerID, addrID).Scan(&propertyID); err != nil {
		log.Fatalf("failed to seed property: %v", err)
	}

	if _, err := db.Exec(`
		INSERT INTO image (property_id, image_url)
		VALUES ($1, 'https://cdn.example.com/p/' || $1 || '/front.jpg')
	`, propertyID); err != nil {
		log.Fatalf("failed to seed image: %v", err)
	}
}
