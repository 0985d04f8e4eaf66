// Package pg loads relation candidate sets from PostgreSQL using the pgx/v5
// driver.
//
// Config is populated from environment variables (PG_CONN_URL and pool
// settings) through the config package. Connect opens a *pgxpool.Pool with
// retries. IDSource reads every primary key of a related table so that the
// schema package can turn foreign key fields into membership checks:
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	builder := schema.NewBuilder(pg.NewIDSource(pool, cfg.IDColumn))
//
// Table and column names are quoted with pgx.Identifier, so relation names
// coming from schema files are never interpolated raw.
package pg
