package queue_test

import (
	"context"
	"testing"

	queue "github.com/courtside/fastbreak/internal/adapters/mq/queue"
	model "github.com/courtside/fastbreak/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestInMemoryQueue(t *testing.T) {
	Convey("Given an in-memory possession queue", t, func() {
		ctx := context.Background()

		Convey("When possessions are enqueued", func() {
			q := queue.NewInMemoryQueue(queue.WithCapacity(2))

			ok := q.Enqueue(ctx, model.Possession{ID: "p1"})
			So(ok, ShouldBeTrue)
			So(q.Len(ctx), ShouldEqual, 1)

			Convey("Then they come back in order on the dequeue channel", func() {
				So(q.Enqueue(ctx, model.Possession{ID: "p2"}), ShouldBeTrue)
				So(q.Close(), ShouldBeNil)

				var ids []string
				for p := range q.Dequeue(ctx) {
					ids = append(ids, p.ID)
				}
				So(ids, ShouldResemble, []string{"p1", "p2"})
			})
		})

		Convey("When the queue is full", func() {
			q := queue.NewInMemoryQueue(queue.WithCapacity(1))
			So(q.Enqueue(ctx, model.Possession{ID: "p1"}), ShouldBeTrue)

			Convey("Then further enqueues are rejected without blocking", func() {
				So(q.Enqueue(ctx, model.Possession{ID: "p2"}), ShouldBeFalse)
			})
		})

		Convey("When the queue is closed", func() {
			q := queue.NewInMemoryQueue()
			So(q.IsClosed(), ShouldBeFalse)
			So(q.Close(), ShouldBeNil)

			Convey("Then it reports closed and rejects enqueues", func() {
				So(q.IsClosed(), ShouldBeTrue)
				So(q.Enqueue(ctx, model.Possession{ID: "late"}), ShouldBeFalse)
			})

			Convey("And closing again is a no-op", func() {
				So(q.Close(), ShouldBeNil)
			})

			Convey("And the dequeue channel is closed", func() {
				_, open := <-q.Dequeue(ctx)
				So(open, ShouldBeFalse)
			})
		})

		Convey("When constructed with an invalid capacity option", func() {
			q := queue.NewInMemoryQueue(queue.WithCapacity(0))

			Convey("Then the default capacity applies", func() {
				So(q.Enqueue(ctx, model.Possession{ID: "p1"}), ShouldBeTrue)
			})
		})
	})
}
