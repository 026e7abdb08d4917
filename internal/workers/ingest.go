package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/favsync/favsync/domain"
)

const defaultReconnectInterval = 5 * time.Second

// ingestWorker keeps one stream connection open and stores every
// observation it delivers, reconnecting with a fixed delay whenever
// the connection drops.
type ingestWorker struct {
	stream            domain.TweetStream
	tweets            domain.TweetUsecase
	reconnectInterval time.Duration
}

func NewIngestWorker(stream domain.TweetStream, tweets domain.TweetUsecase) *ingestWorker {
	return &ingestWorker{
		stream:            stream,
		tweets:            tweets,
		reconnectInterval: defaultReconnectInterval,
	}
}

func (w *ingestWorker) Start(ctx context.Context) {
	logrus.Info("tweet stream initializing")

	for {
		if ctx.Err() != nil {
			logrus.Info("shutting down IngestWorker")
			return
		}

		ch, err := w.stream.Listen(ctx)
		if err != nil {
			logrus.Errorf("tweet stream connect failed: %v", err)
			w.sleep(ctx)
			continue
		}

		for obs := range ch {
			if _, err := w.tweets.Observe(ctx, obs); err != nil {
				logrus.Errorf("failed to store observed tweet %s: %v", obs.TwitterID, err)
			}
		}

		if ctx.Err() != nil {
			logrus.Info("shutting down IngestWorker")
			return
		}

		logrus.Info("tweet stream disconnected, reconnecting")
		w.sleep(ctx)
	}
}

func (w *ingestWorker) sleep(ctx context.Context) {
	select {
	case <-time.After(w.reconnectInterval):
	case <-ctx.Done():
	}
}
