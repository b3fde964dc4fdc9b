package vehicle

import (
	"fmt"
	"sort"

	"github.com/hatakesamadireddi1-dev/trafficSimulator/entity"
	"github.com/hatakesamadireddi1-dev/trafficSimulator/utils/config"
)

// VehicleManager Vehicle管理器
// 功能：管理所有Vehicle实体，提供创建、查找、删除等功能
// 说明：车辆表持有车辆所有权，路段队列中只保存引用
type VehicleManager struct {
	ctx entity.ITaskContext

	data   map[int32]*Vehicle
	nextID int32
}

// NewManager 创建Vehicle管理器实例
// 功能：初始化Vehicle管理器，创建内部数据结构
// 参数：ctx-任务上下文
// 返回：新创建的Vehicle管理器实例
func NewManager(ctx entity.ITaskContext) *VehicleManager {
	return &VehicleManager{
		ctx:  ctx,
		data: make(map[int32]*Vehicle),
	}
}

// Create 根据配置创建车辆
// 功能：校验路径、创建Vehicle对象并加入首路段队尾
// 参数：c-车辆配置
// 返回：新创建的Vehicle实例，路径或属性非法时返回error
// 说明：路径必须非空且所有下标都在路网范围内
func (m *VehicleManager) Create(c config.Vehicle) (entity.IVehicle, error) {
	if len(c.Path) == 0 {
		return nil, fmt.Errorf("vehicle path is empty")
	}
	for _, index := range c.Path {
		if _, err := m.ctx.SegmentManager().GetOrError(index); err != nil {
			return nil, fmt.Errorf("vehicle path contains bad segment index %d: %w", index, err)
		}
	}
	v, err := New(m.nextID, c)
	if err != nil {
		return nil, err
	}
	m.nextID++
	m.data[v.id] = v
	m.ctx.SegmentManager().Get(v.SegmentIndex()).PushVehicle(v)
	return v, nil
}

// Get 根据ID获取Vehicle实例
// 功能：通过车辆ID查找对应的Vehicle对象，如果不存在则panic
// 参数：id-车辆的唯一标识符
// 返回：对应的Vehicle实例，如果不存在则panic
func (m *VehicleManager) Get(id int32) entity.IVehicle {
	if v, ok := m.data[id]; !ok {
		log.Panicf("no id %d in vehicle data", id)
		return nil
	} else {
		return v
	}
}

// GetOrError 根据ID获取Vehicle实例（带错误处理）
// 功能：通过车辆ID查找对应的Vehicle对象，如果不存在则返回错误
// 参数：id-车辆的唯一标识符
// 返回：Vehicle实例和错误信息，如果不存在则返回nil和错误
func (m *VehicleManager) GetOrError(id int32) (entity.IVehicle, error) {
	if v, ok := m.data[id]; !ok {
		return nil, fmt.Errorf("no id %d in vehicle data", id)
	} else {
		return v, nil
	}
}

// Remove 从车辆表中删除车辆
// 功能：车辆走完路径后从车辆表中清除
// 参数：id-车辆的唯一标识符
// 说明：路段队列中的引用由模拟器在弹出队首时一并解除
func (m *VehicleManager) Remove(id int32) {
	delete(m.data, id)
}

// Count 获取车辆数
func (m *VehicleManager) Count() int {
	return len(m.data)
}

// All 获取全部车辆（按ID升序）
func (m *VehicleManager) All() []entity.IVehicle {
	vehicles := make([]entity.IVehicle, 0, len(m.data))
	for _, v := range m.data {
		vehicles = append(vehicles, v)
	}
	sort.Slice(vehicles, func(i, j int) bool { return vehicles[i].ID() < vehicles[j].ID() })
	return vehicles
}
