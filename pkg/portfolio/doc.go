// Package portfolio is the Redis-backed archive of generated marks.
//
// The generation engine never imports this package: it produces markup and
// metadata, and callers that want to keep a result hand it to a Client. The
// archive stores the markup as an opaque blob.
//
// # Layout
//
// Every key and channel is namespaced by workspace so several projects can
// share one Redis server:
//
//	glyph:{workspace}:mark:{id}        hash, one per mark
//	glyph:{workspace}:brand:{brand}    ZSET of mark ids scored by creation time
//	glyph:{workspace}:mark_events      Pub/Sub channel, full mark JSON per save
//
// Mark ids are seeds, so saving the same seed twice overwrites one mark.
//
// # Usage
//
//	client, err := portfolio.NewClient(&redis.Options{Addr: "localhost:6379"}, "default")
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	err = client.SaveMark(ctx, &portfolio.Mark{ID: string(s), Brand: "Acme", SVG: markup, Source: portfolio.SourceGenerate})
package portfolio
