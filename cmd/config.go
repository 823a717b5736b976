package cmd

type Config struct {
	HTTPPort              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	KafkaBrokers          string
	KafkaOrderStatusTopic string
	RoutingBaseURL        string
	RoutingAPIKey         string
	BiddingAutoOpen       bool
	BiddingAutoResolve    bool
	MetricsEnabled        bool
}
