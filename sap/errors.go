package sap

import "fmt"

// The three SAP failure classes the rest of the system distinguishes.
// Connection failures are transient and safe to retry, validation failures
// need a changed payload, data failures need investigation.

type ConnectionError struct {
	CompanyCode string
	Op          string
	Err         error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("SAP connection failure [%s] during %s: %v", e.CompanyCode, e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

type ValidationError struct {
	CompanyCode string
	Op          string
	Message     string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("SAP rejected %s [%s]: %s", e.Op, e.CompanyCode, e.Message)
}

type DataError struct {
	CompanyCode string
	Op          string
	Err         error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("SAP data failure [%s] during %s: %v", e.CompanyCode, e.Op, e.Err)
}

func (e *DataError) Unwrap() error { return e.Err }
