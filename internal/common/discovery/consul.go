package discovery

import (
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/consul/api"
	"google.golang.org/grpc/resolver"
)

const (
	consulScheme  = "consul"
	refreshPeriod = 5 * time.Second
)

// ConsulResolver 把 consul:///<service> 形式的 gRPC target 解析为
// Consul 健康实例列表。注册为全局 resolver builder，每个 Dial 各自
// 起一个 watcher 周期刷新地址。
type ConsulResolver struct {
	client  *api.Client
	service string // target 未带服务名时的缺省值
}

// NewConsulResolver 创建并注册 Consul 解析器
func NewConsulResolver(client *api.Client, service string) *ConsulResolver {
	r := &ConsulResolver{
		client:  client,
		service: service,
	}
	resolver.Register(r)
	return r
}

// Build 为一次 Dial 构建 watcher
func (r *ConsulResolver) Build(target resolver.Target, cc resolver.ClientConn, opts resolver.BuildOptions) (resolver.Resolver, error) {
	service := strings.TrimPrefix(target.Endpoint(), "/")
	if service == "" {
		service = r.service
	}
	if service == "" {
		return nil, fmt.Errorf("consul resolver: no service name in target %q", target)
	}

	w := &consulWatcher{
		client:  r.client,
		service: service,
		cc:      cc,
		stop:    make(chan struct{}),
	}
	go w.watch()
	return w, nil
}

// Scheme 返回scheme
func (r *ConsulResolver) Scheme() string {
	return consulScheme
}

// consulWatcher 单次 Dial 的地址刷新循环。
type consulWatcher struct {
	client    *api.Client
	service   string
	cc        resolver.ClientConn
	stop      chan struct{}
	lastIndex uint64
}

func (w *consulWatcher) watch() {
	// 先做一次同步，再按周期刷新
	w.update()

	ticker := time.NewTicker(refreshPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.update()
		case <-w.stop:
			return
		}
	}
}

func (w *consulWatcher) update() {
	services, meta, err := w.client.Health().Service(w.service, "", true, &api.QueryOptions{
		WaitIndex: w.lastIndex,
	})
	if err != nil {
		w.cc.ReportError(err)
		return
	}

	w.lastIndex = meta.LastIndex

	addrs := make([]resolver.Address, 0, len(services))
	for _, service := range services {
		addrs = append(addrs, resolver.Address{
			Addr: fmt.Sprintf("%s:%d", service.Service.Address, service.Service.Port),
		})
	}

	// 全部实例不健康时保留旧地址，等下一轮刷新
	if len(addrs) > 0 {
		_ = w.cc.UpdateState(resolver.State{Addresses: addrs})
	}
}

// ResolveNow 立即解析
func (w *consulWatcher) ResolveNow(resolver.ResolveNowOptions) {
	w.update()
}

// Close 停掉刷新循环
func (w *consulWatcher) Close() {
	close(w.stop)
}

// ServiceRegistry Consul服务注册
type ServiceRegistry struct {
	client    *api.Client
	serviceID string
	service   string
	address   string
	port      int
	tags      []string
	check     *api.AgentServiceCheck
}

// NewServiceRegistry 创建服务注册器
func NewServiceRegistry(client *api.Client, serviceID, service, address string, port int, tags []string) *ServiceRegistry {
	return &ServiceRegistry{
		client:    client,
		serviceID: serviceID,
		service:   service,
		address:   address,
		port:      port,
		tags:      tags,
		check: &api.AgentServiceCheck{
			GRPC:                           fmt.Sprintf("%s:%d", address, port),
			Interval:                       "10s",
			Timeout:                        "5s",
			DeregisterCriticalServiceAfter: "30s",
		},
	}
}

// Register 注册服务
func (r *ServiceRegistry) Register() error {
	registration := &api.AgentServiceRegistration{
		ID:      r.serviceID,
		Name:    r.service,
		Tags:    r.tags,
		Address: r.address,
		Port:    r.port,
		Check:   r.check,
	}

	return r.client.Agent().ServiceRegister(registration)
}

// Deregister 注销服务
func (r *ServiceRegistry) Deregister() error {
	return r.client.Agent().ServiceDeregister(r.serviceID)
}

// NewConsulClient 创建Consul客户端
func NewConsulClient(host string, port int) (*api.Client, error) {
	config := api.DefaultConfig()
	config.Address = fmt.Sprintf("%s:%d", host, port)
	return api.NewClient(config)
}
