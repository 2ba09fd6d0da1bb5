package main

import (
	"database/sql"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/business-copilot-api/internal/config"
	"github.com/vfg2006/business-copilot-api/internal/domain"
	"github.com/vfg2006/business-copilot-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

const demoPassword = "demo1234"

var schema = []struct {
	name  string
	query string
}{
	{"users", `
		CREATE TABLE IF NOT EXISTS users (
			id            VARCHAR(32) PRIMARY KEY,
			email         VARCHAR(255) NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			business_name VARCHAR(255) NOT NULL,
			sector        VARCHAR(32) NOT NULL,
			tone          VARCHAR(32) NOT NULL,
			logo_url      TEXT,
			primary_color VARCHAR(16),
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`},
	{"users_email_unique", `CREATE UNIQUE INDEX IF NOT EXISTS users_email_unique ON users (email)`},
	{"campaigns", `
		CREATE TABLE IF NOT EXISTS campaigns (
			id          VARCHAR(32) PRIMARY KEY,
			user_id     VARCHAR(32) NOT NULL REFERENCES users (id) ON DELETE CASCADE,
			title       VARCHAR(255) NOT NULL,
			description TEXT NOT NULL,
			posts       JSONB NOT NULL,
			status      VARCHAR(16) NOT NULL,
			created_at  TIMESTAMPTZ NOT NULL
		)`},
	{"posts", `
		CREATE TABLE IF NOT EXISTS posts (
			id                VARCHAR(32) PRIMARY KEY,
			user_id           VARCHAR(32) NOT NULL REFERENCES users (id) ON DELETE CASCADE,
			campaign_id       VARCHAR(32) REFERENCES campaigns (id) ON DELETE SET NULL,
			title             VARCHAR(255) NOT NULL,
			content           TEXT NOT NULL,
			visual_suggestion TEXT,
			status            VARCHAR(16) NOT NULL,
			channel           VARCHAR(16) NOT NULL,
			publish_date      TIMESTAMPTZ NOT NULL,
			created_at        TIMESTAMPTZ NOT NULL
		)`},
	{"posts_user_idx", `CREATE INDEX IF NOT EXISTS posts_user_idx ON posts (user_id, created_at DESC)`},
	{"promotions", `
		CREATE TABLE IF NOT EXISTS promotions (
			id                VARCHAR(32) PRIMARY KEY,
			user_id           VARCHAR(32) NOT NULL REFERENCES users (id) ON DELETE CASCADE,
			title             VARCHAR(255) NOT NULL,
			description       TEXT NOT NULL,
			discount          VARCHAR(64) NOT NULL,
			start_date        TIMESTAMPTZ NOT NULL,
			end_date          TIMESTAMPTZ NOT NULL,
			google_post       TEXT NOT NULL,
			facebook_post     TEXT NOT NULL,
			visual_suggestion TEXT,
			status            VARCHAR(16) NOT NULL,
			created_at        TIMESTAMPTZ NOT NULL
		)`},
	{"reviews", `
		CREATE TABLE IF NOT EXISTS reviews (
			id       VARCHAR(32) PRIMARY KEY,
			user_id  VARCHAR(32) NOT NULL REFERENCES users (id) ON DELETE CASCADE,
			rating   SMALLINT NOT NULL CHECK (rating BETWEEN 1 AND 5),
			author   VARCHAR(255) NOT NULL,
			content  TEXT NOT NULL,
			date     TIMESTAMPTZ NOT NULL,
			platform VARCHAR(16) NOT NULL
		)`},
	{"reviews_user_idx", `CREATE INDEX IF NOT EXISTS reviews_user_idx ON reviews (user_id, date DESC)`},
	{"review_responses", `
		CREATE TABLE IF NOT EXISTS review_responses (
			id         VARCHAR(32) PRIMARY KEY,
			review_id  VARCHAR(32) NOT NULL REFERENCES reviews (id) ON DELETE CASCADE,
			response   TEXT NOT NULL,
			status     VARCHAR(16) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`},
	{"review_responses_review_unique", `CREATE UNIQUE INDEX IF NOT EXISTS review_responses_review_unique ON review_responses (review_id)`},
	{"clients", `
		CREATE TABLE IF NOT EXISTS clients (
			id         VARCHAR(32) PRIMARY KEY,
			user_id    VARCHAR(32) NOT NULL REFERENCES users (id) ON DELETE CASCADE,
			name       VARCHAR(255) NOT NULL,
			email      VARCHAR(255),
			created_at TIMESTAMPTZ NOT NULL
		)`},
	{"statistics_snapshots", `
		CREATE TABLE IF NOT EXISTS statistics_snapshots (
			id               BIGSERIAL PRIMARY KEY,
			user_id          VARCHAR(32) NOT NULL REFERENCES users (id) ON DELETE CASCADE,
			period           VARCHAR(8) NOT NULL,
			posts_published  INTEGER NOT NULL,
			reviews_received INTEGER NOT NULL,
			reviews_answered INTEGER NOT NULL,
			views            INTEGER NOT NULL,
			date             TIMESTAMPTZ NOT NULL
		)`},
	{"statistics_snapshots_user_idx", `CREATE INDEX IF NOT EXISTS statistics_snapshots_user_idx ON statistics_snapshots (user_id, date DESC, id DESC)`},
	{"achievements", `
		CREATE TABLE IF NOT EXISTS achievements (
			id          VARCHAR(32) PRIMARY KEY,
			user_id     VARCHAR(32) NOT NULL REFERENCES users (id) ON DELETE CASCADE,
			type        VARCHAR(32) NOT NULL,
			title       VARCHAR(255) NOT NULL,
			description TEXT NOT NULL,
			icon        VARCHAR(16) NOT NULL,
			earned_at   TIMESTAMPTZ NOT NULL
		)`},
	{"achievements_user_type_unique", `CREATE UNIQUE INDEX IF NOT EXISTS achievements_user_type_unique ON achievements (user_id, type)`},
	{"monthly_reports", `
		CREATE TABLE IF NOT EXISTS monthly_reports (
			id              VARCHAR(32) PRIMARY KEY,
			user_id         VARCHAR(32) NOT NULL REFERENCES users (id) ON DELETE CASCADE,
			month           VARCHAR(7) NOT NULL,
			metrics         JSONB NOT NULL,
			summary         TEXT NOT NULL,
			recommendations JSONB NOT NULL,
			html_content    TEXT NOT NULL,
			created_at      TIMESTAMPTZ NOT NULL
		)`},
	{"monthly_reports_user_month_unique", `CREATE UNIQUE INDEX IF NOT EXISTS monthly_reports_user_month_unique ON monthly_reports (user_id, month)`},
}

type demoClient struct {
	Name  string
	Email string
}

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")
}

func createSchema(db *sql.DB) {
	logrus.Infof("Criando %d objetos do schema...", len(schema))
	startTime := time.Now()

	for _, object := range schema {
		if _, err := db.Exec(object.query); err != nil {
			logrus.WithError(err).Fatalf("ERRO ao criar %s", object.name)
		}
		logrus.Debugf("%s criado", object.name)
	}

	logrus.Infof("Schema criado em %v", time.Since(startTime))
}

func insertDemoUser(tx *sql.Tx) string {
	logrus.Info("Inserindo usuário de demonstração...")

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao gerar hash da senha de demonstração")
	}

	id, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao gerar id do usuário")
	}

	var userID string
	err = tx.QueryRow(`
		INSERT INTO users (id, email, password_hash, business_name, sector, tone)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (email) DO UPDATE SET updated_at = NOW()
		RETURNING id`,
		id, "demo@copilot.fr", string(hash), "Le Petit Bistro", domain.SectorRestaurant, domain.ToneFriendly,
	).Scan(&userID)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao inserir usuário de demonstração")
	}

	return userID
}

func insertDemoClients(tx *sql.Tx, userID string, clients []demoClient) {
	logrus.Infof("Iniciando inserção de %d clientes...", len(clients))
	startTime := time.Now()

	stmt, err := tx.Prepare(`INSERT INTO clients (id, user_id, name, email, created_at) VALUES ($1, $2, $3, $4, $5)`)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao preparar statement para clients")
	}
	defer stmt.Close()

	successCount := 0
	errorCount := 0

	for i, c := range clients {
		id, err := utils.GenerateID()
		if err != nil {
			errorCount++
			continue
		}

		if _, err := stmt.Exec(id, userID, c.Name, c.Email, time.Now()); err != nil {
			logrus.WithError(err).Errorf("ERRO ao inserir cliente [%d/%d] %s", i+1, len(clients), c.Name)
			errorCount++
			continue
		}
		successCount++
	}

	logrus.Infof("Inserção de clientes concluída em %v. Sucesso: %d, Erros: %d", time.Since(startTime), successCount, errorCount)
}

func seedDemo(db *sql.DB) {
	startTime := time.Now()
	logrus.Info("Iniciando transação...")

	tx, err := db.Begin()
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao iniciar transação")
	}

	userID := insertDemoUser(tx)
	insertDemoClients(tx, userID, []demoClient{
		{"Marie Dupont", "marie.dupont@exemple.fr"},
		{"Jean Martin", "jean.martin@exemple.fr"},
		{"Sophie Bernard", ""},
	})

	if err := tx.Commit(); err != nil {
		logrus.WithError(err).Error("ERRO ao confirmar transação")
		if err := tx.Rollback(); err != nil {
			logrus.WithError(err).Fatal("ERRO ao reverter transação")
		}
		logrus.Info("Transação revertida")
		os.Exit(1)
	}

	logrus.Infof("Carga de demonstração concluída em %v! Login: demo@copilot.fr / %s", time.Since(startTime), demoPassword)
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao carregar configuração")
	}

	logrus.Info("Conectando ao banco de dados...")
	db, err := sql.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao banco de dados")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("ERRO ao verificar conexão com o banco")
	}
	logrus.Info("Conexão com o banco de dados estabelecida com sucesso")

	createSchema(db)

	// MIGRATION_SEED_DEMO=true cria um usuário e alguns clientes de exemplo
	if viper.GetBool("MIGRATION_SEED_DEMO") {
		seedDemo(db)
	}
}
