// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.3.0
// - protoc             (unknown)
// source: internal/api/proto/booking/booking.proto

package bookingpb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.32.0 or later.
const _ = grpc.SupportPackageIsVersion7

const (
	BookingService_RequestBooking_FullMethodName      = "/carconnect.booking.BookingService/RequestBooking"
	BookingService_ApproveRequest_FullMethodName      = "/carconnect.booking.BookingService/ApproveRequest"
	BookingService_RejectRequest_FullMethodName       = "/carconnect.booking.BookingService/RejectRequest"
	BookingService_BookDirect_FullMethodName          = "/carconnect.booking.BookingService/BookDirect"
	BookingService_ListBookingRequests_FullMethodName = "/carconnect.booking.BookingService/ListBookingRequests"
	BookingService_GetUsageHistory_FullMethodName     = "/carconnect.booking.BookingService/GetUsageHistory"
)

// BookingServiceClient is the client API for BookingService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type BookingServiceClient interface {
	RequestBooking(ctx context.Context, in *RequestBookingRequest, opts ...grpc.CallOption) (*RequestBookingResponse, error)
	ApproveRequest(ctx context.Context, in *ApproveRequestRequest, opts ...grpc.CallOption) (*ApproveRequestResponse, error)
	RejectRequest(ctx context.Context, in *RejectRequestRequest, opts ...grpc.CallOption) (*RejectRequestResponse, error)
	BookDirect(ctx context.Context, in *BookDirectRequest, opts ...grpc.CallOption) (*BookDirectResponse, error)
	ListBookingRequests(ctx context.Context, in *ListBookingRequestsRequest, opts ...grpc.CallOption) (*ListBookingRequestsResponse, error)
	GetUsageHistory(ctx context.Context, in *GetUsageHistoryRequest, opts ...grpc.CallOption) (*GetUsageHistoryResponse, error)
}

type bookingServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBookingServiceClient(cc grpc.ClientConnInterface) BookingServiceClient {
	return &bookingServiceClient{cc}
}

func (c *bookingServiceClient) RequestBooking(ctx context.Context, in *RequestBookingRequest, opts ...grpc.CallOption) (*RequestBookingResponse, error) {
	out := new(RequestBookingResponse)
	err := c.cc.Invoke(ctx, BookingService_RequestBooking_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bookingServiceClient) ApproveRequest(ctx context.Context, in *ApproveRequestRequest, opts ...grpc.CallOption) (*ApproveRequestResponse, error) {
	out := new(ApproveRequestResponse)
	err := c.cc.Invoke(ctx, BookingService_ApproveRequest_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bookingServiceClient) RejectRequest(ctx context.Context, in *RejectRequestRequest, opts ...grpc.CallOption) (*RejectRequestResponse, error) {
	out := new(RejectRequestResponse)
	err := c.cc.Invoke(ctx, BookingService_RejectRequest_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bookingServiceClient) BookDirect(ctx context.Context, in *BookDirectRequest, opts ...grpc.CallOption) (*BookDirectResponse, error) {
	out := new(BookDirectResponse)
	err := c.cc.Invoke(ctx, BookingService_BookDirect_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bookingServiceClient) ListBookingRequests(ctx context.Context, in *ListBookingRequestsRequest, opts ...grpc.CallOption) (*ListBookingRequestsResponse, error) {
	out := new(ListBookingRequestsResponse)
	err := c.cc.Invoke(ctx, BookingService_ListBookingRequests_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bookingServiceClient) GetUsageHistory(ctx context.Context, in *GetUsageHistoryRequest, opts ...grpc.CallOption) (*GetUsageHistoryResponse, error) {
	out := new(GetUsageHistoryResponse)
	err := c.cc.Invoke(ctx, BookingService_GetUsageHistory_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BookingServiceServer is the server API for BookingService service.
// All implementations must embed UnimplementedBookingServiceServer
// for forward compatibility
type BookingServiceServer interface {
	RequestBooking(context.Context, *RequestBookingRequest) (*RequestBookingResponse, error)
	ApproveRequest(context.Context, *ApproveRequestRequest) (*ApproveRequestResponse, error)
	RejectRequest(context.Context, *RejectRequestRequest) (*RejectRequestResponse, error)
	BookDirect(context.Context, *BookDirectRequest) (*BookDirectResponse, error)
	ListBookingRequests(context.Context, *ListBookingRequestsRequest) (*ListBookingRequestsResponse, error)
	GetUsageHistory(context.Context, *GetUsageHistoryRequest) (*GetUsageHistoryResponse, error)
	mustEmbedUnimplementedBookingServiceServer()
}

// UnimplementedBookingServiceServer must be embedded to have forward compatible implementations.
type UnimplementedBookingServiceServer struct {
}

func (UnimplementedBookingServiceServer) RequestBooking(context.Context, *RequestBookingRequest) (*RequestBookingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RequestBooking not implemented")
}
func (UnimplementedBookingServiceServer) ApproveRequest(context.Context, *ApproveRequestRequest) (*ApproveRequestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ApproveRequest not implemented")
}
func (UnimplementedBookingServiceServer) RejectRequest(context.Context, *RejectRequestRequest) (*RejectRequestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RejectRequest not implemented")
}
func (UnimplementedBookingServiceServer) BookDirect(context.Context, *BookDirectRequest) (*BookDirectResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BookDirect not implemented")
}
func (UnimplementedBookingServiceServer) ListBookingRequests(context.Context, *ListBookingRequestsRequest) (*ListBookingRequestsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListBookingRequests not implemented")
}
func (UnimplementedBookingServiceServer) GetUsageHistory(context.Context, *GetUsageHistoryRequest) (*GetUsageHistoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetUsageHistory not implemented")
}
func (UnimplementedBookingServiceServer) mustEmbedUnimplementedBookingServiceServer() {}

// UnsafeBookingServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to BookingServiceServer will
// result in compilation errors.
type UnsafeBookingServiceServer interface {
	mustEmbedUnimplementedBookingServiceServer()
}

func RegisterBookingServiceServer(s grpc.ServiceRegistrar, srv BookingServiceServer) {
	s.RegisterService(&BookingService_ServiceDesc, srv)
}

func _BookingService_RequestBooking_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RequestBookingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BookingServiceServer).RequestBooking(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BookingService_RequestBooking_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BookingServiceServer).RequestBooking(ctx, req.(*RequestBookingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BookingService_ApproveRequest_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ApproveRequestRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BookingServiceServer).ApproveRequest(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BookingService_ApproveRequest_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BookingServiceServer).ApproveRequest(ctx, req.(*ApproveRequestRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BookingService_RejectRequest_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RejectRequestRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BookingServiceServer).RejectRequest(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BookingService_RejectRequest_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BookingServiceServer).RejectRequest(ctx, req.(*RejectRequestRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BookingService_BookDirect_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BookDirectRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BookingServiceServer).BookDirect(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BookingService_BookDirect_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BookingServiceServer).BookDirect(ctx, req.(*BookDirectRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BookingService_ListBookingRequests_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListBookingRequestsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BookingServiceServer).ListBookingRequests(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BookingService_ListBookingRequests_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BookingServiceServer).ListBookingRequests(ctx, req.(*ListBookingRequestsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BookingService_GetUsageHistory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetUsageHistoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BookingServiceServer).GetUsageHistory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BookingService_GetUsageHistory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BookingServiceServer).GetUsageHistory(ctx, req.(*GetUsageHistoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// BookingService_ServiceDesc is the grpc.ServiceDesc for BookingService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var BookingService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "carconnect.booking.BookingService",
	HandlerType: (*BookingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RequestBooking",
			Handler:    _BookingService_RequestBooking_Handler,
		},
		{
			MethodName: "ApproveRequest",
			Handler:    _BookingService_ApproveRequest_Handler,
		},
		{
			MethodName: "RejectRequest",
			Handler:    _BookingService_RejectRequest_Handler,
		},
		{
			MethodName: "BookDirect",
			Handler:    _BookingService_BookDirect_Handler,
		},
		{
			MethodName: "ListBookingRequests",
			Handler:    _BookingService_ListBookingRequests_Handler,
		},
		{
			MethodName: "GetUsageHistory",
			Handler:    _BookingService_GetUsageHistory_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "internal/api/proto/booking/booking.proto",
}
