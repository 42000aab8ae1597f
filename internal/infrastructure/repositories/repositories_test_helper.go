package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		session_token TEXT,
		status TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createBrandTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE brands (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		display_name TEXT NOT NULL,
		company_name TEXT NOT NULL,
		ein TEXT NOT NULL,
		entity_type TEXT NOT NULL,
		vertical TEXT NOT NULL,
		phone TEXT NOT NULL,
		email TEXT NOT NULL,
		country TEXT NOT NULL,
		website TEXT,
		street TEXT NOT NULL,
		city TEXT NOT NULL,
		state TEXT NOT NULL,
		postal_code TEXT NOT NULL,
		stock_symbol TEXT,
		stock_exchange TEXT,
		ip_address TEXT,
		alt_business_id TEXT,
		alt_business_id_type TEXT,
		status TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createCampaignTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE campaigns (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		brand_id TEXT NOT NULL,
		campaign_name TEXT NOT NULL,
		description TEXT NOT NULL,
		call_to_action TEXT NOT NULL,
		sample_message TEXT NOT NULL,
		opt_in_message TEXT NOT NULL,
		opt_out_message TEXT NOT NULL,
		help_message TEXT NOT NULL,
		status TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createLeadTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE leads (
		id TEXT PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		company TEXT,
		job_title TEXT,
		website TEXT,
		industry TEXT,
		company_size TEXT,
		message TEXT,
		how_did_you_hear TEXT,
		source TEXT NOT NULL,
		status TEXT NOT NULL,
		priority TEXT NOT NULL,
		brand_id TEXT,
		hubspot_contact_id TEXT,
		hubspot_company_id TEXT,
		notes TEXT,
		assigned_to TEXT,
		last_contact_date DATETIME,
		next_follow_up_date DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE lead_activities (
		id TEXT PRIMARY KEY,
		lead_id TEXT NOT NULL,
		type TEXT NOT NULL,
		status TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		outcome TEXT,
		notes TEXT,
		assigned_to TEXT,
		scheduled_date DATETIME,
		completed_date DATETIME,
		duration TEXT,
		hubspot_activity_id TEXT,
		metadata TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createTCRRegistrationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE tcr_registrations (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		brand_id TEXT NOT NULL,
		campaign_id TEXT,
		tcr_brand_id TEXT,
		tcr_campaign_id TEXT,
		status TEXT NOT NULL,
		tcr_response TEXT,
		error_message TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}
