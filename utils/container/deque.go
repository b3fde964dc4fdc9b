package container

import (
	"fmt"
	"log"
)

// minDequeCapacity 环形缓冲区的最小容量
const minDequeCapacity = 8

// Deque 基于环形缓冲区的先进先出队列
// 功能：维护路段上车辆的排队顺序，队首为最靠前的车辆
// 说明：只允许队尾插入与队首弹出，不支持中间插入或重排，
// 保证每步的队列操作次数只与跨越路段边界的车辆数成正比
type Deque[T any] struct {
	ID string // 队列标识符

	data []T
	head int
	size int
}

// NewDeque 创建队列
// 功能：初始化一个空队列
// 参数：id-队列标识符，用于错误信息定位
// 返回：新创建的队列指针
func NewDeque[T any](id string) *Deque[T] {
	return &Deque[T]{
		ID:   id,
		data: make([]T, minDequeCapacity),
	}
}

// String 获取队列的字符串表示
func (q *Deque[T]) String() string {
	return fmt.Sprintf("Deque{ID:%v, Len:%v}", q.ID, q.size)
}

// Len 获取队列长度
func (q *Deque[T]) Len() int {
	return q.size
}

// PushBack 向队尾插入元素
// 功能：在队列尾部添加一个新元素，容量不足时倍增扩容
// 参数：value-要插入的元素
func (q *Deque[T]) PushBack(value T) {
	if q.size == len(q.data) {
		q.grow()
	}
	q.data[(q.head+q.size)%len(q.data)] = value
	q.size++
}

// PopFront 弹出队首元素
// 功能：移除并返回队列头部的元素，空队列时panic
// 返回：被移除的队首元素
func (q *Deque[T]) PopFront() T {
	if q.size == 0 {
		log.Panicf("pop from empty deque %v", q.ID)
	}
	value := q.data[q.head]
	var zero T
	q.data[q.head] = zero
	q.head = (q.head + 1) % len(q.data)
	q.size--
	return value
}

// Front 获取队首元素
// 返回：队首元素与是否存在
func (q *Deque[T]) Front() (T, bool) {
	if q.size == 0 {
		var zero T
		return zero, false
	}
	return q.data[q.head], true
}

// Back 获取队尾元素
// 返回：队尾元素与是否存在
func (q *Deque[T]) Back() (T, bool) {
	if q.size == 0 {
		var zero T
		return zero, false
	}
	return q.data[(q.head+q.size-1)%len(q.data)], true
}

// Values 获取队列中所有元素
// 功能：按从队首到队尾的顺序返回所有元素的副本
// 返回：元素数组
func (q *Deque[T]) Values() []T {
	values := make([]T, q.size)
	for i := 0; i < q.size; i++ {
		values[i] = q.data[(q.head+i)%len(q.data)]
	}
	return values
}

// grow 扩容
// 功能：将底层缓冲区容量翻倍并重排元素到缓冲区头部
func (q *Deque[T]) grow() {
	data := make([]T, len(q.data)*2)
	for i := 0; i < q.size; i++ {
		data[i] = q.data[(q.head+i)%len(q.data)]
	}
	q.data = data
	q.head = 0
}
