// Package config provides configuration parsing for retain.
//
// The configuration is stored in retain.json in the working directory.
// Every field is optional; missing values take the defaults below.
//
// # Configuration File Structure
//
//	{
//	  "addr": "localhost:7070",
//	  "logLevel": "info",
//	  "keyed": false,
//	  "demo": "counter",
//	  "metrics": {
//	    "namespace": "retain"
//	  },
//	  "tracing": {
//	    "tracerName": "retain"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.LoadOrDefault(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Addr:", cfg.Addr)
package config
