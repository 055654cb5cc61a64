package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type DealBotConfig struct {
	Env 		string 	`yaml:"env"`
	HTTPServer 	   		`yaml:"http_server"`
	DealDB 		   		`yaml:"deal_db"`
	LogConfig 	   		`yaml:"log_config"`
	Discord 	   		`yaml:"discord"`
	Chain 		   		`yaml:"chain"`
	KafkaService   		`yaml:"kafka-service"`
	OAuth 		   		`yaml:"oauth"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type DealDB struct {
	Dsn string `yaml:"dsn"`
}

type LogConfig struct {
	LogLevel 	string 	`yaml:"log_level"`
	LogFormat 	string 	`yaml:"log_format"`
	LogOutput 	string 	`yaml:"log_output"`
}

type Discord struct {
	BotToken 		string 			  `yaml:"bot_token" env:"DISCORD_BOT_TOKEN"`
	// guild ID -> category ID for new ticket channels
	TicketCategories map[string]string `yaml:"ticket_categories"`
	// guild ID -> channel ID where finalized orders are posted for claiming
	PoolChannels 	map[string]string `yaml:"pool_channels"`
	ReviewChannelID string 			  `yaml:"review_channel_id"`
	StaffRoleID 	string 			  `yaml:"staff_role_id"`
	AdminRoleID 	string 			  `yaml:"admin_role_id"`
	PoolRoleID 		string 			  `yaml:"pool_role_id"`
}

type Chain struct {
	RpcURL 				  string `yaml:"rpc_url" env:"CHAIN_RPC_URL"`
	PrivateKey 			  string `yaml:"private_key" env:"CHAIN_PRIVATE_KEY"`
	EscrowAddress 		  string `yaml:"escrow_address" env:"ESCROW_SERVICE_ADDRESS"`
	TokenAddress 		  string `yaml:"token_address" env:"TOKEN_ADDRESS"`
	TicketRegistryAddress string `yaml:"ticket_registry_address" env:"TICKET_REGISTRY_ADDRESS"`
}

type KafkaService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type OAuth struct {
	ClientID 	 string `yaml:"client_id" env:"OAUTH_CLIENT_ID"`
	ClientSecret string `yaml:"client_secret" env:"OAUTH_CLIENT_SECRET"`
	RedirectURI  string `yaml:"redirect_uri"`
	TokenURL 	 string `yaml:"token_url"`
}

func MustLoad() *DealBotConfig {

	// Processing env config variable and file
	configPath := os.Getenv("DEALBOT_CONFIG_PATH")

	if configPath == ""{
		log.Fatalf("DEALBOT_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil{
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg DealBotConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil{
		log.Fatalf("failed to read config file: %v", err)
	}

	// Без БД и контрактов бот не поднимаем
	if cfg.DealDB.Dsn == "" {
		log.Fatalf("deal_db.dsn is required")
	}
	if cfg.Chain.RpcURL == "" || cfg.Chain.PrivateKey == "" {
		log.Fatalf("chain rpc_url and private_key are required")
	}
	if cfg.Chain.EscrowAddress == "" || cfg.Chain.TicketRegistryAddress == "" || cfg.Chain.TokenAddress == "" {
		log.Fatalf("escrow, token and ticket registry addresses are required")
	}

	return &cfg
}
