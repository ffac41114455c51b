package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/mindease/mindease-api/internal/infrastructure/config"
	"github.com/mindease/mindease-api/internal/infrastructure/database"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Erro ao carregar configuração: %v", err)
	}

	// Executar as migrações
	if err := database.RunMigrations(cfg); err != nil {
		log.Fatalf("Erro ao executar migrações: %v", err)
	}

	log.Println("Migrações executadas com sucesso!")
}
