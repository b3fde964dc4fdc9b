package output

import (
	"context"

	"git.fiblab.net/general/common/v2/mongoutil"
	"github.com/hatakesamadireddi1-dev/trafficSimulator/utils/config"
	"go.mongodb.org/mongo-driver/mongo"
)

// Recorder 仿真结果记录器
// 功能：将每步的车辆运动数据批量写入MongoDB
// 说明：写入在内存中缓冲，达到批量大小后一次InsertMany，
// 结束时需调用Close冲刷剩余数据并断开连接
type Recorder struct {
	client *mongo.Client
	col    *mongo.Collection

	batch    int
	interval int32

	buffer []interface{}
}

// NewRecorder 创建仿真结果记录器
// 功能：连接MongoDB并初始化记录器
// 参数：c-输出配置
// 返回：初始化完成的记录器实例
func NewRecorder(c config.Output) *Recorder {
	if c.Batch <= 0 {
		c.Batch = 256
	}
	if c.Interval <= 0 {
		c.Interval = 1
	}
	client := mongoutil.NewClient(c.URI)
	return &Recorder{
		client:   client,
		col:      client.Database(c.DB).Collection(c.Col),
		batch:    c.Batch,
		interval: c.Interval,
		buffer:   make([]interface{}, 0, c.Batch),
	}
}

// ShouldRecord 判断指定步数是否需要记录
func (r *Recorder) ShouldRecord(step int32) bool {
	return step%r.interval == 0
}

// Record 追加一批文档
// 功能：将文档加入缓冲，缓冲达到批量大小时写入数据库
// 参数：docs-待写入的文档列表
func (r *Recorder) Record(docs []interface{}) {
	r.buffer = append(r.buffer, docs...)
	if len(r.buffer) >= r.batch {
		r.Flush()
	}
}

// Flush 将缓冲中的文档写入数据库
// 说明：写入失败只记录日志，不中断仿真
func (r *Recorder) Flush() {
	if len(r.buffer) == 0 {
		return
	}
	if _, err := r.col.InsertMany(context.Background(), r.buffer); err != nil {
		log.Errorf("insert %d docs: %v", len(r.buffer), err)
	}
	r.buffer = r.buffer[:0]
}

// Close 冲刷缓冲并断开数据库连接
func (r *Recorder) Close() {
	r.Flush()
	if err := r.client.Disconnect(context.Background()); err != nil {
		log.Errorf("disconnect: %v", err)
	}
}
