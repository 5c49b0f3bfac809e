// Package services holds the scheduler's use cases. Each service reaches
// storage through a repomanager.RepositoryManager, binding repositories to
// either the shared *sql.DB or a transaction opened with dbx.WithTx. A nil
// *sql.DB means the in-memory backend, where no transactions exist.
package services
