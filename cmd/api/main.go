package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/mindease/mindease-api/internal/infrastructure/config"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	// Carregar a configuração uma única vez
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Erro ao carregar configuração: %v", err)
	}

	// Criar aplicação
	app, err := NewApp(cfg)
	if err != nil {
		log.Fatalf("Erro ao inicializar aplicação: %v", err)
	}
	defer app.Close()

	// Configurar rotas e iniciar o servidor
	app.SetupRoutes("/api/v1")
	if err := app.Run(); err != nil {
		log.Fatalf("Erro ao iniciar servidor: %v", err)
	}
}
