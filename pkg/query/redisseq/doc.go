/*
Package redisseq exposes Redis lists as goseq query sources.

A List implements query.Indexable[string] over a Redis list: LLEN supplies
the length, and element access is served from page-cached LRANGE fetches.
Because sequences read their source lazily, a query built once can be
re-enumerated to observe the list's latest contents.

	source, err := redisseq.FromList(redisseq.Config{
		Redis: client,
		Key:   "events",
	})
	if err != nil {
		return err
	}

	recent := source.
		Where(func(e string) bool { return strings.HasPrefix(e, "order:") }).
		Take(100)

	for _, e := range recent.ToSlice() {
		process(e)
	}

Redis failures cannot flow through the Indexable contract, so they are
recorded on the List and exposed through Err; check it after materializing
when delivery matters.
*/
package redisseq
