// Package services implements the driving ports: the file library,
// the ingestion pipeline and answer synthesis. Services depend only on
// the driven ports; adapter wiring happens in the CLI layer.
package services
