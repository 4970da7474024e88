package config

import "time"

// defaultConfig is the default configuration for this project
var defaultConfig = config{
	UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 tracklog/1.0",
	Providers: providers{
		Storage: "mariadb",
		Genre:   "lastfm",
	},
	Database: database{
		DriverName: "mysql",
		DSN:        "tracklog@unix(/run/mysqld/mysqld.sock)/tracklog?parseTime=true",
	},
	Scraper: scraper{
		Endpoint:   "https://www1.wdr.de/radio/cosmo/musik/playlist/index.jsp",
		Delay:      Duration(time.Second),
		Timeout:    Duration(time.Second * 30),
		MaxRetries: 0,
		Location:   "Europe/Berlin",
	},
	LastFM: lastfm{
		Endpoint:    "https://ws.audioscrobbler.com/2.0/",
		Delay:       Duration(time.Millisecond * 200),
		Timeout:     Duration(time.Second * 10),
		NotFoundLog: "genres_not_found.txt",
	},
	Metrics: metrics{
		PushgatewayURL: "",
		Job:            "tracklog",
	},
	Telemetry: telemetry{
		Use:      false,
		Endpoint: "localhost:4317",
	},
}
