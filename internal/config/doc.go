// Package config loads teamgen.json (or teamgen.yaml) and applies
// environment overrides.
//
// Precedence, lowest first: built-in defaults, the config file, then
// TEAMGEN_* environment variables. Fields absent from the file keep their
// defaults.
//
//	{
//	  "toast": {
//	    "duration": "3s",
//	    "colors": {"info": "#0055BF", "success": "#00852B", "error": "#D01012"}
//	  },
//	  "log": {"level": "info"}
//	}
package config
